// internal/app/features/authapi/handler.go
package authapi

import (
	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Tokens *auth.TokenManager

	// AdminCode gates admin self-registration. Empty disables it.
	AdminCode string
}

// NewHandler constructs the auth feature handler bound to the given Mongo
// database, token manager, and logger.
func NewHandler(db *mongo.Database, tokens *auth.TokenManager, adminCode string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Tokens:    tokens,
		AdminCode: adminCode,
	}
}
