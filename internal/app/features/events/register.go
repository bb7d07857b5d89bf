// internal/app/features/events/register.go
package events

import (
	"net/http"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type registerRequest struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CollegeName  string `json:"collegeName"`
	Year         string `json:"year"`
	Branch       string `json:"branch"`
	Experience   string `json:"experience"`
	Expectations string `json:"expectations"`
}

// eventID parses the {id} URL parameter. An unparseable id can never
// resolve to an event, so it reports not found.
func eventID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusNotFound, "Event not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// ServeRegister handles POST /api/events/{id}/register.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.CollegeName == "" || req.Year == "" || req.Branch == "" {
		httpjson.Message(w, http.StatusBadRequest, "Name, email, phone, college name, year, and branch are required")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "event registration")
	defer cancel()

	updated, err := h.store.Register(ctx, id, models.Attendee{
		UserID:       req.UserID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CollegeName:  req.CollegeName,
		Year:         req.Year,
		Branch:       req.Branch,
		Experience:   req.Experience,
		Expectations: req.Expectations,
	})
	switch err {
	case nil:
	case eventstore.ErrNotFound:
		httpjson.Message(w, http.StatusNotFound, "Event not found")
		return
	case eventstore.ErrEventEnded:
		httpjson.Message(w, http.StatusBadRequest, "Cannot register for past events. This event has already ended.")
		return
	case eventstore.ErrEventFull:
		httpjson.Message(w, http.StatusBadRequest, "Event is full")
		return
	case eventstore.ErrAlreadyRegistered:
		httpjson.Message(w, http.StatusBadRequest, "Already registered for this event")
		return
	default:
		h.Log.Error("event registration failed", zap.Error(err), zap.String("event_id", id.Hex()))
		httpjson.Message(w, http.StatusInternalServerError, "Error registering for event")
		return
	}

	httpjson.Write(w, http.StatusOK, eventResponse{
		Message: "Registered successfully",
		Event:   *updated,
	})
}
