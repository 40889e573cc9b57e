package usecase

import (
	"todo-summary-assistant/internal/notification"
	"todo-summary-assistant/internal/summary/generator"
	"todo-summary-assistant/internal/todo"
	"todo-summary-assistant/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	todos     todo.UseCase
	generator generator.Generator
	slack     notification.Sender
	telegram  notification.Sender
}

// New creates a summary UseCase. telegram may be nil when that channel is disabled.
func New(l log.Logger, todos todo.UseCase, gen generator.Generator, slack, telegram notification.Sender) *implUseCase {
	return &implUseCase{
		l:         l,
		todos:     todos,
		generator: gen,
		slack:     slack,
		telegram:  telegram,
	}
}
