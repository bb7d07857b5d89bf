// internal/app/features/events/listings.go
package events

import (
	"net/http"
	"sort"
	"strings"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.uber.org/zap"
)

const popularEventLimit = 5

type popularEvent struct {
	Name          string `json:"name"`
	Registrations int    `json:"registrations"`
	Category      string `json:"category"`
}

type adminAnalytics struct {
	TotalEvents        int            `json:"totalEvents"`
	TotalRegistrations int            `json:"totalRegistrations"`
	PopularEvents      []popularEvent `json:"popularEvents"`
}

type byAdminResponse struct {
	Events    []models.Event `json:"events"`
	Analytics adminAnalytics `json:"analytics"`
}

// ServeByUser handles GET /api/events/by-user?userId=&email=, listing
// events the given identity is registered for, date ascending.
func (h *Handler) ServeByUser(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	email := strings.TrimSpace(r.URL.Query().Get("email"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "events by user")
	defer cancel()

	events, err := h.store.ListByAttendee(ctx, userID, email)
	if err == eventstore.ErrMissingIdentity {
		httpjson.Message(w, http.StatusBadRequest, "userId or email required")
		return
	}
	if err != nil {
		h.Log.Error("events by user failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error fetching user events")
		return
	}

	httpjson.Write(w, http.StatusOK, events)
}

// ServeByAdmin handles GET /api/events/by-admin?adminId=&adminEmail=.
// Returns the admin's events newest-first along with derived analytics.
func (h *Handler) ServeByAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := strings.TrimSpace(r.URL.Query().Get("adminId"))
	adminEmail := strings.TrimSpace(r.URL.Query().Get("adminEmail"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "events by admin")
	defer cancel()

	events, err := h.store.ListByCreator(ctx, adminID, adminEmail)
	if err == eventstore.ErrMissingIdentity {
		httpjson.Message(w, http.StatusBadRequest, "adminId or adminEmail is required")
		return
	}
	if err != nil {
		h.Log.Error("events by admin failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error fetching admin events")
		return
	}

	httpjson.Write(w, http.StatusOK, byAdminResponse{
		Events:    events,
		Analytics: analyticsFor(events),
	})
}

// analyticsFor derives per-admin stats from an event list: totals and
// the top events by registration count.
func analyticsFor(events []models.Event) adminAnalytics {
	a := adminAnalytics{
		TotalEvents:   len(events),
		PopularEvents: make([]popularEvent, 0, len(events)),
	}
	for _, e := range events {
		a.TotalRegistrations += len(e.Attendees)
		a.PopularEvents = append(a.PopularEvents, popularEvent{
			Name:          e.Name,
			Registrations: len(e.Attendees),
			Category:      e.Category,
		})
	}
	sort.SliceStable(a.PopularEvents, func(i, j int) bool {
		return a.PopularEvents[i].Registrations > a.PopularEvents[j].Registrations
	})
	if len(a.PopularEvents) > popularEventLimit {
		a.PopularEvents = a.PopularEvents[:popularEventLimit]
	}
	return a
}
