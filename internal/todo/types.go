package todo

import "todo-summary-assistant/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description *string
	Completed   bool
	DueDate     *string
	Category    *string
}

// UpdateInput is a partial update: nil fields are left untouched,
// empty optional text clears the field.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *string
	Category    *string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Todos []model.Task
}

type DetailOutput struct {
	Todo model.Task
}

type CreateOutput struct {
	Todo model.Task
}

type UpdateOutput struct {
	Todo model.Task
}
