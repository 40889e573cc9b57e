package usecase

import (
	"context"
	"errors"

	"todo-summary-assistant/internal/todo"
	repo "todo-summary-assistant/internal/todo/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (todo.DetailOutput, error) {
	t, err := uc.repo.GetTodo(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return todo.DetailOutput{}, todo.ErrTodoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTodo: %v", err)
		return todo.DetailOutput{}, err
	}
	return todo.DetailOutput{Todo: t}, nil
}

// Update merges the supplied fields into an existing Task.
// Validation runs before the store is touched.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateInput) (todo.UpdateOutput, error) {
	dueDate, err := uc.validateUpdate(input)
	if err != nil {
		return todo.UpdateOutput{}, err
	}

	t, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		DueDate:     dueDate,
		Category:    input.Category,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	return todo.UpdateOutput{Todo: t}, nil
}

// Delete removes a Task by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	if !ok {
		return todo.ErrTodoNotFound
	}
	return nil
}
