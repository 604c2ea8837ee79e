package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "prismtasks/internal/errors"
	"prismtasks/internal/model"
	"prismtasks/internal/repository"
)

// TodoParams carries the fields of a new todo.
type TodoParams struct {
	Title       string
	Description string
	Priority    int
	Complete    bool
}

// TodoUpdate carries a partial update. Nil fields retain their prior values.
type TodoUpdate struct {
	Title       *string
	Description *string
	Priority    *int
	Complete    *bool
}

func (u TodoUpdate) apply(todo *model.Todo) {
	if u.Title != nil {
		todo.Title = *u.Title
	}
	if u.Description != nil {
		todo.Description = *u.Description
	}
	if u.Priority != nil {
		todo.Priority = *u.Priority
	}
	if u.Complete != nil {
		todo.Complete = *u.Complete
	}
}

// TodoService exposes todo operations. Owner-scoped methods take the caller's
// user id and never observe other users' rows; the Any variants are reserved
// for admin callers.
type TodoService interface {
	Create(ctx context.Context, ownerID uint, params TodoParams) (*model.Todo, error)
	ListOwned(ctx context.Context, ownerID uint) ([]model.Todo, error)
	GetOwned(ctx context.Context, id, ownerID uint) (*model.Todo, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, update TodoUpdate) (*model.Todo, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) error
	ListAll(ctx context.Context) ([]model.Todo, error)
	UpdateAny(ctx context.Context, id uint, update TodoUpdate) (*model.Todo, error)
	DeleteAny(ctx context.Context, id uint) error
}

type todoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService builds a TodoService.
func NewTodoService(todoRepo repository.TodoRepository) TodoService {
	return &todoService{todoRepo: todoRepo}
}

func (s *todoService) Create(ctx context.Context, ownerID uint, params TodoParams) (*model.Todo, error) {
	todo := &model.Todo{
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		Complete:    params.Complete,
		OwnerID:     ownerID,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) ListOwned(ctx context.Context, ownerID uint) ([]model.Todo, error) {
	return s.todoRepo.ListByOwner(ctx, ownerID)
}

func (s *todoService) GetOwned(ctx context.Context, id, ownerID uint) (*model.Todo, error) {
	todo, err := s.todoRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *todoService) UpdateOwned(ctx context.Context, id, ownerID uint, update TodoUpdate) (*model.Todo, error) {
	todo, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	update.apply(todo)
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	todo, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.todoRepo.Delete(ctx, todo)
}

func (s *todoService) ListAll(ctx context.Context) ([]model.Todo, error) {
	return s.todoRepo.ListAll(ctx)
}

func (s *todoService) UpdateAny(ctx context.Context, id uint, update TodoUpdate) (*model.Todo, error) {
	todo, err := s.findAny(ctx, id)
	if err != nil {
		return nil, err
	}
	update.apply(todo)
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) DeleteAny(ctx context.Context, id uint) error {
	todo, err := s.findAny(ctx, id)
	if err != nil {
		return err
	}
	return s.todoRepo.Delete(ctx, todo)
}

func (s *todoService) findAny(ctx context.Context, id uint) (*model.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}
