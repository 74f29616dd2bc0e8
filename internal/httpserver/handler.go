package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-extraction/internal/middleware"
	"task-extraction/internal/model"
	taskHTTP "task-extraction/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP middleware mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP middleware mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, mw)
	srv.l.Infof(ctx, "Task domain registered under /api/v1/tasks")

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/summaries", srv.webhookHandler.HandleSummaryWebhook)
		srv.l.Infof(ctx, "Summary webhook route registered at POST /webhook/summaries")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping summary webhook route")
	}

	return nil
}
