package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"todo-summary-assistant/internal/model"
	summaryHTTP "todo-summary-assistant/internal/summary/delivery/http"
	todoHTTP "todo-summary-assistant/internal/todo/delivery/http"
	"todo-summary-assistant/pkg/response"
	pkgErrors "todo-summary-assistant/pkg/errors"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.RequestID(), srv.mw.AccessLog(), srv.mw.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "Not found"))
	})
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	todoHTTP.RegisterRoutes(api.Group("/todos"), srv.todoHandler)
	srv.l.Infof(ctx, "Todo routes registered at /api/todos")

	summaryHTTP.RegisterRoutes(api, srv.summaryHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Summary routes registered at /api/summarize, /api/send-to-slack, /api/send-to-telegram")

	return nil
}

// Handler exposes the router, used by tests and custom listeners.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
