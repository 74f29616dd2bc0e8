package middleware

import (
	"task-extraction/config"
	pkgLog "task-extraction/pkg/log"
)

// Middleware bundles the gin middlewares shared across routes.
type Middleware struct {
	l       pkgLog.Logger
	config  *config.Config
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.RateLimit.RequestsPerMin),
	}
}
