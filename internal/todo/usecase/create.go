package usecase

import (
	"context"

	"todo-summary-assistant/internal/todo"
	repo "todo-summary-assistant/internal/todo/repository"
)

// Create validates input and stores a new Task.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	dueDate, err := uc.validateCreate(input)
	if err != nil {
		return todo.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		DueDate:     dueDate,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateOutput{}, err
	}

	return todo.CreateOutput{Todo: t}, nil
}
