package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/service"
	"github.com/solware/solware-id/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// CardHandler serves the business card pages and their derived resources.
type CardHandler struct {
	resolver   *service.Resolver
	dir        service.Directory
	limiter    *service.TokenBucket
	events     domain.EventRepository
	trustProxy bool
}

// NewCardHandler creates a new CardHandler. events may be nil when analytics
// storage is disabled.
func NewCardHandler(resolver *service.Resolver, dir service.Directory, limiter *service.TokenBucket, events domain.EventRepository, trustProxy bool) *CardHandler {
	return &CardHandler{resolver: resolver, dir: dir, limiter: limiter, events: events, trustProxy: trustProxy}
}

// HandleCard resolves the visitor's card from the host or path and renders it.
// GET / and GET /id/{slug}
func (h *CardHandler) HandleCard(w http.ResponseWriter, r *http.Request) {
	lang := domain.ParseLanguage(r.URL.Query().Get("lang"))
	rc := domain.RequestContext{PathParam: r.PathValue("slug"), HostName: r.Host}

	out := h.resolver.Resolve(r.Context(), rc)
	switch out.Kind {
	case domain.Found:
		render(w, r, http.StatusOK, view.CardPage(view.NewCardData(out.Profile, lang)))
	case domain.NotFoundDefault:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case domain.NotFoundSubdomain:
		render(w, r, http.StatusNotFound, view.UnknownSubdomainPage(out.AttemptedKey, lang))
	}
}

// HandleCardFragment patches the card in another language via SSE.
// GET /card/{slug}?lang=
func (h *CardHandler) HandleCardFragment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.dir.FindBySlug(r.PathValue("slug"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	lang := domain.ParseLanguage(r.URL.Query().Get("lang"))

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(
		view.Card(view.NewCardData(p, lang)),
		datastar.WithSelectorID(view.CardID),
	); err != nil {
		slog.Error("patch card fragment", "error", err, "slug", p.Slug)
	}
}

// HandleGo records a click on a contact channel and redirects to it.
// GET /go/{slug}/{channel}
func (h *CardHandler) HandleGo(w http.ResponseWriter, r *http.Request) {
	lang := domain.ParseLanguage(r.URL.Query().Get("lang"))
	p, ok := h.dir.FindBySlug(r.PathValue("slug"))
	if !ok {
		render(w, r, http.StatusNotFound, view.NotFoundPage(lang))
		return
	}

	channel := domain.Channel(r.PathValue("channel"))
	target, ok := service.ActionHref(p, channel)
	if !ok {
		render(w, r, http.StatusNotFound, view.NotFoundPage(lang))
		return
	}

	h.trackClick(r, service.EventName(channel), p)
	http.Redirect(w, r, target, http.StatusFound)
}

// HandleVCard serves the downloadable contact file.
// GET /vcf/{slug}.vcf
func (h *CardHandler) HandleVCard(w http.ResponseWriter, r *http.Request) {
	slug, ok := strings.CutSuffix(r.PathValue("file"), ".vcf")
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	p, found := h.dir.FindBySlug(slug)
	if !found {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := service.WriteVCard(&buf, p, domain.ParseLanguage(r.URL.Query().Get("lang"))); err != nil {
		slog.Error("write vcard", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.trackClick(r, domain.EventClickSaveContact, p)

	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+slug+`.vcf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("write response", "error", err, "slug", slug)
	}
}

// trackClick records a click unless the client is over its rate limit.
func (h *CardHandler) trackClick(r *http.Request, name string, p domain.Profile) {
	if h.limiter != nil && !h.limiter.Allow(ClientIP(r, h.trustProxy)) {
		slog.Warn("click not tracked, client rate limited", "event", name, "slug", p.Slug)
		return
	}
	h.resolver.Track(r.Context(), name, p)
}
