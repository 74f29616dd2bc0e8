package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-extraction/config"
	taskHTTP "task-extraction/internal/task/delivery/http"
	pkgLog "task-extraction/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Task domain
	taskHandler taskHTTP.Handler

	// Webhook ingress
	webhookHandler interface {
		HandleSummaryWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Task domain
	TaskHandler taskHTTP.Handler

	// Webhook ingress (optional)
	WebhookHandler interface {
		HandleSummaryWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		cfg:            cfg.AppConfig,
		taskHandler:    cfg.TaskHandler,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
