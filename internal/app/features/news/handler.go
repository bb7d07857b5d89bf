// internal/app/features/news/handler.go
package news

import (
	"net/http"
	"sort"
	"time"

	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Log     *zap.Logger
	Cache   *Cache
	Sources *Sources
}

// NewHandler constructs the news feature handler.
func NewHandler(cache *Cache, sources *Sources, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Cache:   cache,
		Sources: sources,
	}
}

type newsResponse struct {
	Success     bool             `json:"success"`
	Data        []models.Article `json:"data"`
	Cached      bool             `json:"cached"`
	LastUpdated string           `json:"lastUpdated,omitempty"`
	Warning     string           `json:"warning,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// ServeNews handles GET /api/news. Fresh cache wins; otherwise the
// sources are fanned out and the merged result cached. When every source
// fails, stale cache beats the synthetic fallback.
func (h *Handler) ServeNews(w http.ResponseWriter, r *http.Request) {
	if articles, ok := h.Cache.Get(); ok {
		httpjson.Write(w, http.StatusOK, newsResponse{
			Success: true,
			Data:    articles,
			Cached:  true,
		})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "news aggregation")
	defer cancel()

	articles, succeeded := h.Sources.FetchAll(ctx)
	if succeeded == 0 {
		if stale, ok := h.Cache.GetStale(); ok {
			h.Log.Warn("all news sources failed, serving stale cache")
			httpjson.Write(w, http.StatusOK, newsResponse{
				Success: true,
				Data:    stale,
				Cached:  true,
				Warning: "Using cached data due to API error",
			})
			return
		}
		h.Log.Error("all news sources failed with no cache available")
		httpjson.Write(w, http.StatusServiceUnavailable, newsResponse{
			Success: false,
			Data:    fallbackArticles(time.Now()),
			Error:   "Unable to fetch news at this time",
		})
		return
	}

	if len(articles) < paddingFloor {
		articles = append(articles, syntheticArticles(targetArticles-len(articles), time.Now())...)
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	h.Cache.Set(articles)
	h.Log.Info("news refreshed",
		zap.Int("articles", len(articles)),
		zap.Int("sources", succeeded),
	)
	httpjson.Write(w, http.StatusOK, newsResponse{
		Success:     true,
		Data:        articles,
		Cached:      false,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	})
}
