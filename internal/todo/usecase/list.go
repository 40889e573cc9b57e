package usecase

import (
	"context"

	"todo-summary-assistant/internal/todo"
)

// List returns every Task in insertion order.
func (uc *implUseCase) List(ctx context.Context) (todo.ListOutput, error) {
	todos, err := uc.repo.ListTodos(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, err
	}
	return todo.ListOutput{Todos: todos}, nil
}
