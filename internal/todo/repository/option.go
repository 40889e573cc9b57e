package repository

// CreateTodoOptions holds parameters for inserting a new Task.
// Empty optional text is stored as null.
type CreateTodoOptions struct {
	Title       string
	Description *string
	Completed   bool
	DueDate     *string
	Category    *string
}

// UpdateTodoOptions holds the fields to merge into an existing Task.
// Nil leaves the stored value as is; a pointer to "" clears an optional field.
type UpdateTodoOptions struct {
	ID          int64
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *string
	Category    *string
}
