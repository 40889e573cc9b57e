package generator

import (
	"context"

	"todo-summary-assistant/internal/model"
)

// NoPendingMessage is returned whenever every task is completed.
const NoPendingMessage = "You have no pending tasks. Great job!"

// SourceFallback marks summaries produced by the local Fallback generator.
const SourceFallback = "fallback"

// Summary is a generated overview of pending tasks.
type Summary struct {
	Text string
	// Source names what produced Text: "fallback" or "llm:<provider>".
	Source string
}

// Generator turns a task list into a Summary. Implementations never fail
// on upstream problems; the error return is reserved for programming errors.
type Generator interface {
	Generate(ctx context.Context, todos []model.Task) (Summary, error)
}

// pending keeps tasks that are not completed, preserving order.
func pending(todos []model.Task) []model.Task {
	out := make([]model.Task, 0, len(todos))
	for _, t := range todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
