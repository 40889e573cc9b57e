package memory

import (
	"fmt"
	"sync"

	"todo-summary-assistant/internal/model"
	"todo-summary-assistant/internal/todo/repository"
	"todo-summary-assistant/pkg/log"
)

type implRepository struct {
	mu     sync.RWMutex
	todos  map[int64]model.Task
	order  []int64
	nextID int64
	l      log.Logger
}

// Options configures the in-memory store.
type Options struct {
	// SeedSamples preloads a handful of demo tasks.
	SeedSamples bool
}

// New creates an in-memory Repository. Data lives for the process lifetime only.
func New(l log.Logger, opt Options) repository.Repository {
	r := &implRepository{
		todos:  make(map[int64]model.Task),
		nextID: 1,
		l:      l,
	}
	if opt.SeedSamples {
		r.seed()
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/memory.%s", method)
}

func (r *implRepository) seed() {
	samples := []repository.CreateTodoOptions{
		{
			Title:       "Build fullstack Todo Summary Assistant",
			Description: model.StringPtr("Create a frontend and backend that can manage tasks and generate summaries"),
			DueDate:     model.StringPtr("2025-05-30"),
			Category:    model.StringPtr(model.CategoryWork),
		},
		{
			Title:       "Implement LLM integration",
			Description: model.StringPtr("Add ability to summarize todos using an AI model"),
			DueDate:     model.StringPtr("2025-05-25"),
			Category:    model.StringPtr(model.CategoryUrgent),
		},
		{
			Title:       "Set up Slack integration",
			Description: model.StringPtr("Enable sending todo summaries to a Slack channel"),
			DueDate:     model.StringPtr("2025-05-28"),
			Category:    model.StringPtr(model.CategoryWork),
		},
		{
			Title:       "Write project documentation",
			Description: model.StringPtr("Create a README with setup instructions and screenshots"),
			DueDate:     model.StringPtr("2025-06-02"),
			Category:    model.StringPtr(model.CategoryWork),
		},
		{
			Title:       "Deploy application",
			Description: model.StringPtr("Deploy the app to a hosting service and test all features"),
			DueDate:     model.StringPtr("2025-06-05"),
			Category:    model.StringPtr(model.CategoryWork),
		},
	}
	for _, s := range samples {
		r.insert(s)
	}
}
