package usecase

import (
	"time"

	"todo-summary-assistant/internal/todo/repository"
	"todo-summary-assistant/pkg/datemath"
	"todo-summary-assistant/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new todo UseCase implementation. dateMath resolves relative
// due dates ("tomorrow", "next friday") into calendar dates.
func New(l log.Logger, repo repository.Repository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		dateMath: dateMath,
		now:      time.Now,
	}
}
