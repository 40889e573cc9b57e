package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todo-summary-assistant/internal/model"
	"todo-summary-assistant/internal/todo"
	repo "todo-summary-assistant/internal/todo/repository"
	"todo-summary-assistant/internal/todo/repository/memory"
	"todo-summary-assistant/pkg/datemath"
	"todo-summary-assistant/pkg/log"
)

// failingRepo fails every call to exercise error propagation.
type failingRepo struct{ calls int }

var errBoom = errors.New("boom")

func (f *failingRepo) ListTodos(ctx context.Context) ([]model.Task, error) {
	f.calls++
	return nil, errBoom
}
func (f *failingRepo) GetTodo(ctx context.Context, id int64) (model.Task, error) {
	f.calls++
	return model.Task{}, errBoom
}
func (f *failingRepo) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Task, error) {
	f.calls++
	return model.Task{}, errBoom
}
func (f *failingRepo) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Task, error) {
	f.calls++
	return model.Task{}, errBoom
}
func (f *failingRepo) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	f.calls++
	return false, errBoom
}

func newTestUseCase(t *testing.T, r repo.Repository) *implUseCase {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	if r == nil {
		r = memory.New(log.NewNop(), memory.Options{})
	}
	uc := New(log.NewNop(), r, p)
	uc.now = func() time.Time { return time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC) }
	return uc
}

func fieldNames(err error) []string {
	var verr *todo.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestCreate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	out, err := uc.Create(ctx, todo.CreateInput{
		Title:    "Pay bills",
		DueDate:  model.StringPtr("2025-05-20"),
		Category: model.StringPtr("personal"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := uc.Detail(ctx, out.Todo.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got.Todo.Title != "Pay bills" || got.Todo.Completed || *got.Todo.DueDate != "2025-05-20" || *got.Todo.Category != "personal" {
		t.Errorf("unexpected task: %+v", got.Todo)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		input  todo.CreateInput
		fields []string
	}{
		{"missing title", todo.CreateInput{}, []string{"title"}},
		{"blank title", todo.CreateInput{Title: "   "}, []string{"title"}},
		{"long title", todo.CreateInput{Title: strings.Repeat("x", 256)}, []string{"title"}},
		{"long category", todo.CreateInput{Title: "ok", Category: model.StringPtr(strings.Repeat("c", 51))}, []string{"category"}},
		{"bad due date", todo.CreateInput{Title: "ok", DueDate: model.StringPtr("someday")}, []string{"dueDate"}},
		{"several", todo.CreateInput{Description: model.StringPtr(strings.Repeat("d", 2001)), DueDate: model.StringPtr("2025-13-40")}, []string{"title", "description", "dueDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &failingRepo{}
			uc := newTestUseCase(t, r)

			_, err := uc.Create(context.Background(), tt.input)
			got := fieldNames(err)
			if strings.Join(got, ",") != strings.Join(tt.fields, ",") {
				t.Errorf("fields = %v, want %v (err %v)", got, tt.fields, err)
			}
			if r.calls != 0 {
				t.Errorf("store touched on invalid input")
			}
		})
	}
}

func TestCreate_RelativeDueDate(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.Create(context.Background(), todo.CreateInput{Title: "Call mom", DueDate: model.StringPtr("tomorrow")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Todo.DueDate == nil || *out.Todo.DueDate != "2025-05-21" {
		t.Errorf("due date = %v, want 2025-05-21", out.Todo.DueDate)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)
	created, _ := uc.Create(ctx, todo.CreateInput{Title: "Draft", Category: model.StringPtr("work")})

	done := true
	out, err := uc.Update(ctx, todo.UpdateInput{ID: created.Todo.ID, Completed: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !out.Todo.Completed || out.Todo.Title != "Draft" || *out.Todo.Category != "work" {
		t.Errorf("unexpected merge: %+v", out.Todo)
	}

	_, err = uc.Update(ctx, todo.UpdateInput{ID: created.Todo.ID, Title: model.StringPtr(" ")})
	if names := fieldNames(err); len(names) != 1 || names[0] != "title" {
		t.Errorf("blank title should be rejected, got %v", err)
	}

	_, err = uc.Update(ctx, todo.UpdateInput{ID: 999, Completed: &done})
	if !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestDetailAndDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	if _, err := uc.Detail(ctx, 1); !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("Detail: expected ErrTodoNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, 999); !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("Delete: expected ErrTodoNotFound, got %v", err)
	}

	created, _ := uc.Create(ctx, todo.CreateInput{Title: "gone soon"})
	if err := uc.Delete(ctx, created.Todo.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Detail(ctx, created.Todo.ID); !errors.Is(err, todo.ErrTodoNotFound) {
		t.Errorf("deleted task still visible: %v", err)
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &failingRepo{})

	if _, err := uc.List(ctx); !errors.Is(err, errBoom) {
		t.Errorf("List: %v", err)
	}
	if _, err := uc.Detail(ctx, 1); !errors.Is(err, errBoom) {
		t.Errorf("Detail: %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, errBoom) {
		t.Errorf("Delete: %v", err)
	}
}
