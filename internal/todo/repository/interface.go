package repository

import (
	"context"

	"todo-summary-assistant/internal/model"
)

// Repository is the composed interface for the todo data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for the Task entity.
type TodoRepository interface {
	// ListTodos returns every task in insertion order.
	ListTodos(ctx context.Context) ([]model.Task, error)
	// GetTodo returns ErrNotFound when id is unknown.
	GetTodo(ctx context.Context, id int64) (model.Task, error)
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Task, error)
	// UpdateTodo merges the non-nil fields of opt. Returns ErrNotFound when id is unknown.
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Task, error)
	// DeleteTodo reports whether a task was removed.
	DeleteTodo(ctx context.Context, id int64) (bool, error)
}
