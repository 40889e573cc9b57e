package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-summary-assistant/internal/middleware"
	summaryHTTP "todo-summary-assistant/internal/summary/delivery/http"
	todoHTTP "todo-summary-assistant/internal/todo/delivery/http"
	"todo-summary-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	todoHandler    todoHTTP.Handler
	summaryHandler summaryHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	TodoHandler    todoHTTP.Handler
	SummaryHandler summaryHTTP.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		todoHandler:    cfg.TodoHandler,
		summaryHandler: cfg.SummaryHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoHandler == nil {
		return errors.New("todo handler is required")
	}
	if srv.summaryHandler == nil {
		return errors.New("summary handler is required")
	}
	return nil
}
