// internal/app/features/events/delete.go
package events

import (
	"net/http"
	"strings"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeDelete handles DELETE /api/events/{id}?adminId=&adminEmail=.
// Only the recorded creator may delete an event.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	adminID := strings.TrimSpace(r.URL.Query().Get("adminId"))
	adminEmail := strings.TrimSpace(r.URL.Query().Get("adminEmail"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "event delete")
	defer cancel()

	err := h.store.Delete(ctx, id, adminID, adminEmail)
	switch err {
	case nil:
	case eventstore.ErrMissingIdentity:
		httpjson.Message(w, http.StatusBadRequest, "Admin identification required")
		return
	case eventstore.ErrNotFound:
		httpjson.Message(w, http.StatusNotFound, "Event not found")
		return
	case eventstore.ErrNotOwner:
		httpjson.Message(w, http.StatusForbidden, "You can only delete events you created")
		return
	default:
		h.Log.Error("event delete failed", zap.Error(err), zap.String("event_id", id.Hex()))
		httpjson.Message(w, http.StatusInternalServerError, "Error deleting event")
		return
	}

	h.Log.Info("event deleted", zap.String("event_id", id.Hex()))
	httpjson.Message(w, http.StatusOK, "Event deleted successfully")
}
