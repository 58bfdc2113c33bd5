package handler

import (
	"log/slog"
	"net/http"

	"github.com/solware/solware-id/internal/domain"
)

// HandleProfile returns a profile and its contact actions as JSON.
// GET /api/profiles/{slug}
func (h *CardHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.dir.FindBySlug(r.PathValue("slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(p, domain.ParseLanguage(r.URL.Query().Get("lang"))))
}

// HandleStats returns event counts for a profile.
// GET /api/profiles/{slug}/stats
func (h *CardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		writeError(w, http.StatusNotFound, "analytics storage is disabled")
		return
	}
	p, ok := h.dir.FindBySlug(r.PathValue("slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	counts, err := h.events.CountBySlug(r.Context(), p.Slug)
	if err != nil {
		slog.Error("count profile events", "error", err, "slug", p.Slug)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{Slug: p.Slug, Counts: counts})
}
