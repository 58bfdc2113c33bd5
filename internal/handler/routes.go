package handler

import (
	"net/http"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, cards *CardHandler) {
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /{$}", cards.HandleCard)
	mux.HandleFunc("GET /id/{slug}", cards.HandleCard)
	mux.HandleFunc("GET /card/{slug}", cards.HandleCardFragment)
	mux.HandleFunc("GET /go/{slug}/{channel}", cards.HandleGo)
	mux.HandleFunc("GET /vcf/{file}", cards.HandleVCard)

	mux.HandleFunc("GET /api/profiles/{slug}", cards.HandleProfile)
	mux.HandleFunc("GET /api/profiles/{slug}/stats", cards.HandleStats)

	// Unknown paths fall back to the default card.
	mux.HandleFunc("/", HandleFallback)
}

// HandleFallback redirects any unmatched path to the root card.
func HandleFallback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
