package repository

import (
	"context"

	"gorm.io/gorm"

	"prismtasks/internal/model"
)

// TodoRepository defines todo persistence operations. Owner-scoped lookups
// constrain the query itself (id AND owner_id), so a non-owner's request
// observes record-not-found rather than a forbidden leak of existence.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Todo, error)
	ListAll(ctx context.Context) ([]model.Todo, error)
	FindByID(ctx context.Context, id uint) (*model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, todo *model.Todo) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository builds a GORM-backed repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListAll returns every todo in the system regardless of owner. Admin only.
func (r *todoRepository) ListAll(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID looks a todo up without an owner constraint. Admin only.
func (r *todoRepository) FindByID(ctx context.Context, id uint) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *todoRepository) Delete(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Delete(todo).Error
}
