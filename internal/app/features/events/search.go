// internal/app/features/events/search.go
package events

import (
	"net/http"
	"strings"

	eventstore "github.com/dalemusser/eventhub/internal/app/store/events"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeSearch handles GET /api/events?q=&category=. Both filters are
// optional; the result is ordered by date ascending.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	filter := eventstore.SearchFilter{
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "event search")
	defer cancel()

	events, err := h.store.Search(ctx, filter)
	if err != nil {
		h.Log.Error("event search failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error fetching events")
		return
	}

	httpjson.Write(w, http.StatusOK, events)
}
