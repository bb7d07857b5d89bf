// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authapifeature "github.com/dalemusser/eventhub/internal/app/features/authapi"
	eventsfeature "github.com/dalemusser/eventhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/eventhub/internal/app/features/health"
	newsfeature "github.com/dalemusser/eventhub/internal/app/features/news"
	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/app/system/ratelimit"
	"github.com/dalemusser/eventhub/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. EventHub mounts the JSON API
// feature routers under /api: auth, events, news, profile, and health.
// loginLimit is stopped by Shutdown.
var loginLimit *ratelimit.Limiter

func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := auth.NewTokenManager(appCfg.JWTSecret, appCfg.TokenTTL)
	loginLimit = ratelimit.New(appCfg.LoginRateLimit, appCfg.LoginRateWindow)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	healthHandler := healthfeature.NewHandler(deps.EventHubMongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	authHandler := authapifeature.NewHandler(deps.EventHubMongoDatabase, tokens, appCfg.AdminCode, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler, loginLimit))
	r.Mount("/api/profile", authapifeature.ProfileRoutes(authHandler))

	eventsHandler := eventsfeature.NewHandler(deps.EventHubMongoDatabase, logger)
	r.Mount("/api/events", eventsfeature.Routes(eventsHandler))

	newsHandler := newsfeature.NewHandler(
		newsfeature.NewCache(appCfg.NewsCacheTTL),
		newsfeature.NewSources(nil, logger),
		logger,
	)
	r.Mount("/api/news", newsfeature.Routes(newsHandler))

	return r, nil
}
