package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "prismtasks/internal/errors"
	"prismtasks/internal/model"
)

// MockTodoRepository is a mock implementation of TodoRepository.
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoRepository) ListAll(ctx context.Context) ([]model.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockTodoRepository) FindByID(ctx context.Context, id uint) (*model.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepository) Delete(ctx context.Context, todo *model.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func ownedTodo() *model.Todo {
	return &model.Todo{
		ID:          10,
		Title:       "Write report",
		Description: "Quarterly figures",
		Priority:    2,
		Complete:    false,
		OwnerID:     42,
	}
}

func TestTodoService_Create(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Todo")).Return(nil)

	service := NewTodoService(mockRepo)
	todo, err := service.Create(context.Background(), 42, TodoParams{
		Title:       "Write report",
		Description: "Quarterly figures",
		Priority:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), todo.OwnerID)
	assert.Equal(t, "Write report", todo.Title)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_GetOwned_MasksExistence(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	// The owner-filtered query simply finds nothing for a non-owner; the
	// caller sees not-found, never forbidden.
	mockRepo.On("FindByIDAndOwner", mock.Anything, uint(10), uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewTodoService(mockRepo)
	todo, err := service.GetOwned(context.Background(), 10, 99)

	assert.Nil(t, todo)
	assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_UpdateOwned_PartialPreservesFields(t *testing.T) {
	existing := ownedTodo()

	mockRepo := new(MockTodoRepository)
	mockRepo.On("FindByIDAndOwner", mock.Anything, uint(10), uint(42)).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, existing).Return(nil)

	newTitle := "Write final report"
	complete := true

	service := NewTodoService(mockRepo)
	updated, err := service.UpdateOwned(context.Background(), 10, 42, TodoUpdate{
		Title:    &newTitle,
		Complete: &complete,
	})

	require.NoError(t, err)
	assert.Equal(t, "Write final report", updated.Title)
	assert.True(t, updated.Complete)
	// Omitted fields keep their prior values.
	assert.Equal(t, "Quarterly figures", updated.Description)
	assert.Equal(t, 2, updated.Priority)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_DeleteOwned(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTodoRepository)
		expectedError error
	}{
		{
			name: "owner deletes own todo",
			setupMock: func(m *MockTodoRepository) {
				todo := ownedTodo()
				m.On("FindByIDAndOwner", mock.Anything, uint(10), uint(42)).Return(todo, nil)
				m.On("Delete", mock.Anything, todo).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "non-owner observes not found",
			setupMock: func(m *MockTodoRepository) {
				m.On("FindByIDAndOwner", mock.Anything, uint(10), uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTodoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			tt.setupMock(mockRepo)

			service := NewTodoService(mockRepo)
			err := service.DeleteOwned(context.Background(), 10, 42)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTodoService_AdminOperations(t *testing.T) {
	t.Run("update any regardless of owner", func(t *testing.T) {
		existing := ownedTodo()

		mockRepo := new(MockTodoRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, existing).Return(nil)

		priority := 4
		service := NewTodoService(mockRepo)
		updated, err := service.UpdateAny(context.Background(), 10, TodoUpdate{Priority: &priority})

		require.NoError(t, err)
		assert.Equal(t, 4, updated.Priority)
		assert.Equal(t, "Write report", updated.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("delete any missing todo is not found", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)

		service := NewTodoService(mockRepo)
		err := service.DeleteAny(context.Background(), 10)

		assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("list all", func(t *testing.T) {
		todos := []model.Todo{*ownedTodo(), {ID: 11, Title: "Other", Description: "Someone else's", Priority: 1, OwnerID: 7}}

		mockRepo := new(MockTodoRepository)
		mockRepo.On("ListAll", mock.Anything).Return(todos, nil)

		service := NewTodoService(mockRepo)
		all, err := service.ListAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, all, 2)
		mockRepo.AssertExpectations(t)
	})
}
