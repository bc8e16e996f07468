package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sitetrack-backend/internal/config"
	"github.com/heartmarshall/sitetrack-backend/internal/domain"
	"github.com/heartmarshall/sitetrack-backend/internal/service/activity"
	"github.com/heartmarshall/sitetrack-backend/internal/service/readstate"
	"github.com/heartmarshall/sitetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/sitetrack-backend/internal/transport/rest"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Actor, error)
}

// Deps are the collaborators NewHandler mounts. Schema and Limiter may be
// nil.
type Deps struct {
	Pool      pinger
	Schema    pinger
	Activity  *activity.Service
	ReadState *readstate.Service
	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
}

// NewHandler builds the full HTTP stack: routes plus the middleware chain
// Recovery, RequestID, Tracing, Auth, Logger, CORS and RateLimit.
func NewHandler(cfg *config.Config, logger *slog.Logger, deps Deps) http.Handler {
	probes := []rest.Dependency{{Name: "postgres", Pinger: deps.Pool}}
	if deps.Schema != nil {
		probes = append(probes, rest.Dependency{Name: "schema", Pinger: deps.Schema})
	}

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(Version, probes...),
		Activity:  rest.NewActivityHandler(deps.Activity, logger),
		ReadState: rest.NewReadStateHandler(deps.ReadState, logger),
	}, middleware.RequireActor)

	var tracing, limit middleware.Middleware
	if cfg.Tracing.Enabled {
		tracing = middleware.Tracing(cfg.Tracing.ServiceName)
	}
	if deps.Limiter != nil && cfg.Server.RateLimitPerMinute > 0 {
		limit = deps.Limiter.Limit(cfg.Server.RateLimitPerMinute)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		tracing,
		middleware.Auth(deps.Tokens),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)(router)
}
