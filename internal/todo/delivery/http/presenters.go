package http

import (
	"todo-summary-assistant/internal/model"
	"todo-summary-assistant/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"dueDate"`
	Category    *string `json:"category"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
}

// updateReq is partial: omitted or null fields stay untouched.
type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"dueDate"`
	Category    *string `json:"category"`
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
}

// --- Response DTOs ---

// todoResp is the wire form of a Task.
type todoResp = model.Task

func (h *handler) newListResp(out todo.ListOutput) []todoResp {
	if out.Todos == nil {
		return []todoResp{}
	}
	return out.Todos
}
