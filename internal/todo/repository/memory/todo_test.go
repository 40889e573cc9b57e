package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"todo-summary-assistant/internal/model"
	repo "todo-summary-assistant/internal/todo/repository"
	"todo-summary-assistant/pkg/log"
)

func newTestRepo(seed bool) repo.Repository {
	return New(log.NewNop(), Options{SeedSamples: seed})
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(false)

	created, err := r.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:       "Pay bills",
		Description: model.StringPtr(""),
		DueDate:     model.StringPtr("2025-05-20"),
	})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("first id = %d, want 1", created.ID)
	}
	if created.Description != nil {
		t.Errorf("empty description should be stored as nil")
	}

	got, err := r.GetTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodo: %v", err)
	}
	if got.Title != "Pay bills" || got.Completed || *got.DueDate != "2025-05-20" {
		t.Errorf("unexpected task: %+v", got)
	}
}

func TestGetTodo_NotFound(t *testing.T) {
	_, err := newTestRepo(false).GetTodo(context.Background(), 42)
	if !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTodo_MergesFields(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(false)
	created, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:    "Draft",
		Category: model.StringPtr("work"),
		DueDate:  model.StringPtr("2025-01-01"),
	})

	done := true
	updated, err := r.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:        created.ID,
		Completed: &done,
		DueDate:   model.StringPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	if updated.Title != "Draft" || !updated.Completed {
		t.Errorf("unexpected merge result: %+v", updated)
	}
	if updated.Category == nil || *updated.Category != "work" {
		t.Errorf("untouched category changed: %v", updated.Category)
	}
	if updated.DueDate != nil {
		t.Errorf("empty due date should clear the field")
	}

	if _, err := r.UpdateTodo(ctx, repo.UpdateTodoOptions{ID: 99}); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTodo_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(false)
	a, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "a"})
	b, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "b"})

	ok, err := r.DeleteTodo(ctx, b.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteTodo = %v, %v", ok, err)
	}
	ok, _ = r.DeleteTodo(ctx, b.ID)
	if ok {
		t.Error("second delete should report false")
	}

	c, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "c"})
	if c.ID != 3 {
		t.Errorf("id after delete = %d, want 3", c.ID)
	}

	list, _ := r.ListTodos(ctx)
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != c.ID {
		t.Errorf("unexpected order: %+v", list)
	}
}

func TestListTodos_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(false)
	created, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "x", Category: model.StringPtr("work")})

	list, _ := r.ListTodos(ctx)
	list[0].Title = "mutated"
	*list[0].Category = "mutated"

	got, _ := r.GetTodo(ctx, created.ID)
	if got.Title != "x" || *got.Category != "work" {
		t.Errorf("store state leaked: %+v", got)
	}
}

func TestSeedSamples(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(true)

	list, _ := r.ListTodos(ctx)
	if len(list) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(list))
	}
	next, _ := r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "next"})
	if next.ID != 6 {
		t.Errorf("id after seed = %d, want 6", next.ID)
	}
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.CreateTodo(ctx, repo.CreateTodoOptions{Title: "t"})
		}()
	}
	wg.Wait()

	list, _ := r.ListTodos(ctx)
	seen := make(map[int64]bool)
	for _, task := range list {
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
	if len(list) != 50 {
		t.Errorf("expected 50 tasks, got %d", len(list))
	}
}
