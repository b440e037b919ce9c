package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	request "leadgen/pkg/platform/middleware/request"
	"leadgen/pkg/platform/middleware/requesttime"
)

// Routes is implemented by feature handlers that mount their endpoints.
type Routes interface {
	Register(r chi.Router)
}

type Config struct {
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints behind the shared middleware stack.
// A nil metrics disables latency observation.
func NewRouter(cfg Config, logger *slog.Logger, metrics *request.Metrics, routes ...Routes) http.Handler {
	r := chi.NewRouter()

	r.Use(request.RequestID)
	r.Use(request.Recovery(logger))
	r.Use(request.Logger(logger))
	r.Use(requesttime.Middleware)
	r.Use(request.LatencyMiddleware(metrics))
	if cfg.MaxBodyBytes > 0 {
		r.Use(request.BodyLimit(cfg.MaxBodyBytes))
	}
	if cfg.RequestTimeout > 0 {
		r.Use(request.Timeout(cfg.RequestTimeout))
	}

	for _, routes := range routes {
		routes.Register(r)
	}
	return r
}
