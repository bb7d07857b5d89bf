// internal/app/features/events/handler.go
package events

import (
	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	store *eventstore.Store
}

// NewHandler constructs the events feature handler bound to the given
// Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		store: eventstore.New(db),
	}
}
