// internal/app/features/events/create.go
package events

import (
	"net/http"

	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Name            string `json:"name"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	MaxParticipants int    `json:"maxParticipants"`

	// Creator identity arrives inline; the triple is embedded only when
	// an id or email is present.
	AdminID    string `json:"adminId"`
	AdminEmail string `json:"adminEmail"`
	AdminName  string `json:"adminName"`
}

type eventResponse struct {
	Message string       `json:"message"`
	Event   models.Event `json:"event"`
}

// ServeCreate handles POST /api/events. Events created without admin
// identity have no recorded creator and are undeletable by ownership.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event := models.Event{
		Name:            req.Name,
		Date:            req.Date,
		Time:            req.Time,
		Category:        req.Category,
		Location:        req.Location,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
	}
	if req.AdminID != "" || req.AdminEmail != "" {
		event.CreatedBy = &models.Creator{
			AdminID:    req.AdminID,
			AdminEmail: req.AdminEmail,
			AdminName:  req.AdminName,
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "event create")
	defer cancel()

	created, err := h.store.Create(ctx, event)
	if err != nil {
		h.Log.Error("event create failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error creating event")
		return
	}

	h.Log.Info("event created",
		zap.String("event_id", created.ID.Hex()),
		zap.String("name", created.Name),
	)
	httpjson.Write(w, http.StatusCreated, eventResponse{
		Message: "Event created successfully!",
		Event:   created,
	})
}
