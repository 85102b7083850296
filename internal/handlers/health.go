package handlers

import (
	"net/http"
	"time"
)

// Health reports liveness plus per-dependency reachability. The service
// stays "ok" as long as content can be produced, which the local fallback
// guarantees; a down database degrades the status since nothing could be
// persisted.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dbOK := h.content.Ping(ctx) == nil

	cacheOK := false
	if h.weekCache != nil {
		cacheOK = h.weekCache.Ping(ctx) == nil
	}

	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]any{
			"database":          dbOK,
			"cache":             cacheOK,
			"remote_generation": h.genStatus.RemoteAvailable(),
			"fallback":          true,
			"publisher":         h.publisher != nil,
		},
		"generation_source": h.genStatus.Source(),
	})
}
