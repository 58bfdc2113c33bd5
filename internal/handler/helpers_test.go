package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/solware/solware-id/internal/directory"
	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/handler"
	"github.com/solware/solware-id/internal/repository/sqlite"
	"github.com/solware/solware-id/internal/service"
)

// syncSink writes events straight to the repository so tests can assert on
// them without waiting for a background worker.
type syncSink struct {
	repo domain.EventRepository
}

func (s syncSink) Track(ctx context.Context, e domain.Event) {
	s.repo.Create(ctx, &e)
}

var testProfiles = []domain.Profile{
	{
		Slug:     "eugenio-andreone",
		Name:     "Eugenio Andreone",
		Title:    domain.Localized{domain.LanguageEN: "Production Engineer", domain.LanguageES: "Ingeniero de Producción"},
		Company:  domain.Localized{domain.LanguageEN: "Solware Agency", domain.LanguageES: "Agencia Solware"},
		Photo:    "https://example.com/eugenio.png",
		Email:    "ventas@solware.agency",
		Phone:    "+58 414 2323332",
		WhatsApp: "584142323332",
		LinkedIn: "eugenio-andreone",
		Website:  "solware.agency",
		Calendly: "https://calendar.example.com/eugenio",
	},
	{
		Slug:     "luis-mejia",
		Name:     "Luis Mejía",
		Title:    domain.Localized{domain.LanguageEN: "Coach & Consultant", domain.LanguageES: "Coach y Consultor"},
		Company:  domain.Localized{domain.LanguageEN: "Solware Agency", domain.LanguageES: "Agencia Solware"},
		Photo:    "https://example.com/luis.png",
		Phone:    "+58 412-7224007",
		WhatsApp: "584127224007",
	},
}

type testEnv struct {
	srv    *httptest.Server
	mux    *http.ServeMux
	events domain.EventRepository
}

func newTestEnv(t *testing.T, burst float64) *testEnv {
	t.Helper()

	store, err := directory.New(testProfiles)
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("sqlite.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	events := db.Events()

	resolver, err := service.NewResolver(store, "eugenio-andreone", syncSink{repo: events}, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	cards := handler.NewCardHandler(resolver, store, service.NewTokenBucket(0, burst), events, false)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, cards)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, mux: mux, events: events}
}

// noRedirectClient returns a client that reports redirects instead of
// following them.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// serve runs a request with an explicit Host header against the mux.
func (e *testEnv) serve(host, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Host = host
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

func (e *testEnv) counts(t *testing.T, slug string) map[string]int {
	t.Helper()
	counts, err := e.events.CountBySlug(context.Background(), slug)
	if err != nil {
		t.Fatalf("CountBySlug: %v", err)
	}
	return counts
}
