// internal/app/features/events/rsvp.go
package events

import (
	"net/http"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.uber.org/zap"
)

type rsvpRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ServeRSVP handles POST /api/events/{id}/rsvp. A repeat RSVP from the
// same identity replaces the earlier entry rather than appending.
func (h *Handler) ServeRSVP(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var req rsvpRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		httpjson.Message(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "event rsvp")
	defer cancel()

	updated, err := h.store.UpsertRSVP(ctx, id, models.RSVP{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	})
	switch err {
	case nil:
	case eventstore.ErrNotFound:
		httpjson.Message(w, http.StatusNotFound, "Event not found")
		return
	default:
		h.Log.Error("event rsvp failed", zap.Error(err), zap.String("event_id", id.Hex()))
		httpjson.Message(w, http.StatusInternalServerError, "Error recording RSVP")
		return
	}

	httpjson.Write(w, http.StatusOK, eventResponse{
		Message: "RSVP recorded",
		Event:   *updated,
	})
}
