package memory

import (
	"context"

	"todo-summary-assistant/internal/model"
	repo "todo-summary-assistant/internal/todo/repository"
)

// ListTodos returns copies of all tasks in insertion order.
func (r *implRepository) ListTodos(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		todos = append(todos, r.todos[id].Clone())
	}
	return todos, nil
}

// GetTodo retrieves a single Task by ID.
func (r *implRepository) GetTodo(ctx context.Context, id int64) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok {
		return model.Task{}, repo.ErrNotFound
	}
	return t.Clone(), nil
}

// CreateTodo stores a new Task under the next identifier.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.insert(opt)
	r.l.Debugf(ctx, "%s: id=%d", r.dsn("CreateTodo"), t.ID)
	return t.Clone(), nil
}

// UpdateTodo merges the provided fields into an existing Task.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[opt.ID]
	if !ok {
		return model.Task{}, repo.ErrNotFound
	}

	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.Description != nil {
		t.Description = optional(opt.Description)
	}
	if opt.DueDate != nil {
		t.DueDate = optional(opt.DueDate)
	}
	if opt.Category != nil {
		t.Category = optional(opt.Category)
	}

	r.todos[t.ID] = t
	return t.Clone(), nil
}

// DeleteTodo removes a Task by ID. Identifiers are never reused.
func (r *implRepository) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return false, nil
	}
	delete(r.todos, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// insert must be called with the write lock held.
func (r *implRepository) insert(opt repo.CreateTodoOptions) model.Task {
	t := model.Task{
		ID:          r.nextID,
		Title:       opt.Title,
		Description: optional(opt.Description),
		Completed:   opt.Completed,
		DueDate:     optional(opt.DueDate),
		Category:    optional(opt.Category),
	}
	r.nextID++
	r.todos[t.ID] = t
	r.order = append(r.order, t.ID)
	return t
}

// optional copies s, mapping empty text to nil.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
