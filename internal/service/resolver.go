package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/solware/solware-id/internal/domain"
)

// Directory answers profile lookups. *directory.Store implements it.
type Directory interface {
	FindBySlug(slug string) (domain.Profile, bool)
	FindBySubdomain(label string) (domain.Profile, bool)
}

// Resolver turns a request context into a profile outcome.
type Resolver struct {
	dir      Directory
	fallback domain.Profile
	sink     domain.EventSink
	logger   *slog.Logger
	now      func() time.Time
}

// NewResolver creates a Resolver that falls back to defaultSlug in path mode.
// The default slug must exist in dir. A nil sink disables analytics and a nil
// logger uses slog.Default.
func NewResolver(dir Directory, defaultSlug string, sink domain.EventSink, logger *slog.Logger) (*Resolver, error) {
	fallback, ok := dir.FindBySlug(defaultSlug)
	if !ok {
		return nil, fmt.Errorf("%w: default slug %q is not in the directory", domain.ErrInvalidInput, defaultSlug)
	}
	if sink == nil {
		sink = discardSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{dir: dir, fallback: fallback, sink: sink, logger: logger, now: time.Now}, nil
}

// DefaultSlug returns the path-mode fallback slug.
func (r *Resolver) DefaultSlug() string {
	return r.fallback.Slug
}

// Resolve picks the routing mode for rc and looks up the profile.
// Subdomain mode wins whenever the host carries a subdomain; the path
// parameter is then ignored.
func (r *Resolver) Resolve(ctx context.Context, rc domain.RequestContext) domain.Outcome {
	out := r.lookup(rc)
	r.logger.DebugContext(ctx, "resolve",
		"host", rc.HostName,
		"path_param", rc.PathParam,
		"outcome", out.Kind.String(),
		"slug", out.Profile.Slug,
	)

	if out.Kind == domain.Found {
		r.sink.Track(ctx, r.NewEvent(domain.EventPageView, out.Profile))
	}
	return out
}

// Lookup resolves rc without recording analytics.
func (r *Resolver) Lookup(rc domain.RequestContext) domain.Outcome {
	return r.lookup(rc)
}

func (r *Resolver) lookup(rc domain.RequestContext) domain.Outcome {
	if label, ok := ExtractSubdomain(rc.HostName); ok {
		if p, found := r.dir.FindBySubdomain(label); found {
			return domain.Outcome{Kind: domain.Found, Profile: p}
		}
		return domain.Outcome{Kind: domain.NotFoundSubdomain, AttemptedKey: label}
	}

	if rc.PathParam == "" {
		return domain.Outcome{Kind: domain.Found, Profile: r.fallback}
	}
	if p, found := r.dir.FindBySlug(rc.PathParam); found {
		return domain.Outcome{Kind: domain.Found, Profile: p}
	}
	return domain.Outcome{Kind: domain.NotFoundDefault, Profile: r.fallback, AttemptedKey: rc.PathParam}
}

// Track records a named event about p through the configured sink.
func (r *Resolver) Track(ctx context.Context, name string, p domain.Profile) {
	r.sink.Track(ctx, r.NewEvent(name, p))
}

// NewEvent builds an event about p stamped with a fresh id.
func (r *Resolver) NewEvent(name string, p domain.Profile) domain.Event {
	return domain.Event{
		ID:        uuid.NewString(),
		Name:      name,
		Subject:   p.Name,
		Slug:      p.Slug,
		CreatedAt: r.now().UTC(),
	}
}

type discardSink struct{}

func (discardSink) Track(context.Context, domain.Event) {}
