// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS, body limits); AppConfig is everything specific to this
// application. The struct is passed to most lifecycle hooks, so any
// configuration needed during startup, request handling, or shutdown
// lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration
	JWTSecret string        // HMAC secret for signing bearer tokens (must be strong in production)
	TokenTTL  time.Duration // Bearer token lifetime

	// AdminCode gates admin self-registration. Empty disables the route.
	AdminCode string

	// Login rate limiting
	LoginRateLimit  int           // Attempts allowed per window per client IP
	LoginRateWindow time.Duration // Window size

	// News aggregation
	NewsCacheTTL time.Duration // How long aggregated articles stay fresh
}
