package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/solware/solware-id/internal/directory"
	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/service"
)

type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Track(_ context.Context, e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) recorded() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func luisProfile() domain.Profile {
	return domain.Profile{
		Slug:     "luis-mejia",
		Name:     "Luis Mejía",
		Title:    domain.Localized{domain.LanguageEN: "Coach & Consultant", domain.LanguageES: "Coach y Consultor"},
		Company:  domain.Localized{domain.LanguageEN: "Solware Agency", domain.LanguageES: "Agencia Solware"},
		Photo:    "https://example.com/luis.png",
		Email:    "luismccoach@gmail.com",
		Phone:    "+58 412-7224007",
		WhatsApp: "584127224007",
		LinkedIn: "luis-mejia-bb590a223",
		Website:  "solware.agency",
	}
}

func eugenioProfile() domain.Profile {
	return domain.Profile{
		Slug:     "eugenio-andreone",
		Name:     "Eugenio Andreone",
		Title:    domain.Localized{domain.LanguageEN: "Production Engineer", domain.LanguageES: "Ingeniero de Producción"},
		Company:  domain.Localized{domain.LanguageEN: "Solware Agency", domain.LanguageES: "Agencia Solware"},
		Photo:    "https://example.com/eugenio.png",
		Email:    "ventas@solware.agency",
		Phone:    "+58 414 2323332",
		WhatsApp: "584142323332",
		Calendly: "https://calendar.example.com/eugenio",
	}
}

func newTestResolver(t *testing.T, defaultSlug string, profiles ...domain.Profile) (*service.Resolver, *recordingSink) {
	t.Helper()
	store, err := directory.New(profiles)
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}
	sink := &recordingSink{}
	r, err := service.NewResolver(store, defaultSlug, sink, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r, sink
}

func TestNewResolver_UnknownDefault(t *testing.T) {
	store, err := directory.New([]domain.Profile{luisProfile()})
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}
	_, err = service.NewResolver(store, "ghost", nil, nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResolve_EndToEnd(t *testing.T) {
	r, sink := newTestResolver(t, "luis-mejia", luisProfile())
	ctx := context.Background()

	byPath := r.Resolve(ctx, domain.RequestContext{PathParam: "luis-mejia", HostName: "localhost"})
	if byPath.Kind != domain.Found {
		t.Fatalf("path: expected Found, got %s", byPath.Kind)
	}
	if byPath.Profile.Name != "Luis Mejía" {
		t.Fatalf("path: expected Luis Mejía, got %q", byPath.Profile.Name)
	}

	byHost := r.Resolve(ctx, domain.RequestContext{HostName: "luis.solware.agency"})
	if byHost.Kind != domain.Found || byHost.Profile.Slug != byPath.Profile.Slug {
		t.Fatalf("host: expected Found(luis-mejia), got %s(%q)", byHost.Kind, byHost.Profile.Slug)
	}

	miss := r.Resolve(ctx, domain.RequestContext{HostName: "random.solware.agency"})
	if miss.Kind != domain.NotFoundSubdomain || miss.AttemptedKey != "random" {
		t.Fatalf("miss: expected NotFoundSubdomain(random), got %s(%q)", miss.Kind, miss.AttemptedKey)
	}

	events := sink.recorded()
	if len(events) != 2 {
		t.Fatalf("expected 2 page views, got %d", len(events))
	}
	for _, e := range events {
		if e.Name != domain.EventPageView || e.Subject != "Luis Mejía" || e.Slug != "luis-mejia" {
			t.Fatalf("unexpected event: %+v", e)
		}
		if e.ID == "" || e.CreatedAt.IsZero() {
			t.Fatalf("event missing id or timestamp: %+v", e)
		}
	}
}

func TestResolve_SubdomainIsSlug(t *testing.T) {
	r, sink := newTestResolver(t, "eugenio-andreone", luisProfile(), eugenioProfile())

	for _, host := range []string{"luis-mejia.solware.agency", "LUIS-MEJIA.solware.agency:443", "luis.solware.agency"} {
		out := r.Resolve(context.Background(), domain.RequestContext{HostName: host})
		if out.Kind != domain.Found || out.Profile.Slug != "luis-mejia" {
			t.Fatalf("%s: expected Found(luis-mejia), got %s(%q)", host, out.Kind, out.Profile.Slug)
		}
	}
	if n := len(sink.recorded()); n != 3 {
		t.Fatalf("expected 3 page views, got %d", n)
	}
}

func TestResolve_SharedFirstNameRoutesBySlugOnly(t *testing.T) {
	perez := luisProfile()
	perez.Slug = "luis-perez"
	perez.Name = "Luis Pérez"
	r, _ := newTestResolver(t, "luis-mejia", luisProfile(), perez)
	ctx := context.Background()

	shared := r.Resolve(ctx, domain.RequestContext{HostName: "luis.solware.agency"})
	if shared.Kind != domain.NotFoundSubdomain || shared.AttemptedKey != "luis" {
		t.Fatalf("shared label: expected NotFoundSubdomain(luis), got %s(%q)", shared.Kind, shared.AttemptedKey)
	}
	out := r.Resolve(ctx, domain.RequestContext{HostName: "luis-perez.solware.agency"})
	if out.Kind != domain.Found || out.Profile.Name != "Luis Pérez" {
		t.Fatalf("slug host: expected Found(luis-perez), got %s(%q)", out.Kind, out.Profile.Slug)
	}
}

func TestResolve_PathModeFallback(t *testing.T) {
	r, sink := newTestResolver(t, "eugenio-andreone", luisProfile(), eugenioProfile())
	ctx := context.Background()

	root := r.Resolve(ctx, domain.RequestContext{HostName: "localhost:8080"})
	if root.Kind != domain.Found || root.Profile.Slug != "eugenio-andreone" {
		t.Fatalf("root: expected Found(eugenio-andreone), got %s(%q)", root.Kind, root.Profile.Slug)
	}

	unknown := r.Resolve(ctx, domain.RequestContext{PathParam: "nobody", HostName: "solware.agency"})
	if unknown.Kind != domain.NotFoundDefault {
		t.Fatalf("unknown: expected NotFoundDefault, got %s", unknown.Kind)
	}
	if unknown.Profile.Slug != "eugenio-andreone" {
		t.Fatalf("unknown: expected fallback profile, got %q", unknown.Profile.Slug)
	}

	if got := len(sink.recorded()); got != 1 {
		t.Fatalf("expected 1 page view, got %d", got)
	}
}

func TestResolve_SubdomainModeIgnoresPath(t *testing.T) {
	r, _ := newTestResolver(t, "eugenio-andreone", luisProfile(), eugenioProfile())

	out := r.Resolve(context.Background(), domain.RequestContext{PathParam: "eugenio-andreone", HostName: "LUIS.solware.agency"})
	if out.Kind != domain.Found || out.Profile.Slug != "luis-mejia" {
		t.Fatalf("expected Found(luis-mejia), got %s(%q)", out.Kind, out.Profile.Slug)
	}
}

func TestResolve_SubdomainMissIsNotDefault(t *testing.T) {
	r, sink := newTestResolver(t, "luis-mejia", luisProfile())

	out := r.Resolve(context.Background(), domain.RequestContext{HostName: "ghost.solware.agency"})
	if out.Kind != domain.NotFoundSubdomain {
		t.Fatalf("expected NotFoundSubdomain, got %s", out.Kind)
	}
	if out.AttemptedKey != "ghost" {
		t.Fatalf("expected attempted key ghost, got %q", out.AttemptedKey)
	}
	if out.Profile.Slug != "" {
		t.Fatalf("expected no profile, got %q", out.Profile.Slug)
	}
	if len(sink.recorded()) != 0 {
		t.Fatal("misses must not record page views")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r, _ := newTestResolver(t, "luis-mejia", luisProfile(), eugenioProfile())
	contexts := []domain.RequestContext{
		{PathParam: "luis-mejia"},
		{PathParam: "ghost"},
		{},
		{HostName: "eugenio.solware.agency"},
		{HostName: "ghost.solware.agency"},
	}

	for _, rc := range contexts {
		first := r.Lookup(rc)
		for range 5 {
			again := r.Resolve(context.Background(), rc)
			if again.Kind != first.Kind || again.Profile.Slug != first.Profile.Slug || again.AttemptedKey != first.AttemptedKey {
				t.Fatalf("%+v: outcome changed from %+v to %+v", rc, first, again)
			}
		}
	}
}

func TestResolve_NilSink(t *testing.T) {
	store, err := directory.New([]domain.Profile{luisProfile()})
	if err != nil {
		t.Fatalf("directory.New: %v", err)
	}
	r, err := service.NewResolver(store, "luis-mejia", nil, nil)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	if out := r.Resolve(context.Background(), domain.RequestContext{}); out.Kind != domain.Found {
		t.Fatalf("expected Found, got %s", out.Kind)
	}
	if r.DefaultSlug() != "luis-mejia" {
		t.Fatalf("unexpected default slug %q", r.DefaultSlug())
	}
}
