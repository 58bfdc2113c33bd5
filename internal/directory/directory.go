// Package directory holds the read-only set of profiles served by the
// application and answers point lookups by slug or subdomain label.
package directory

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/solware/solware-id/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Store is an immutable, in-memory profile directory. It is safe for
// concurrent use because nothing mutates it after New returns.
type Store struct {
	bySlug     map[string]domain.Profile
	byFolded   map[string]string // lower-cased slug -> slug
	byExplicit map[string]string // explicit subdomain -> slug
	byDerived  map[string]string // first slug segment -> slug, "" when ambiguous
}

// New validates the profiles and builds a Store from a copy of them.
// Slugs must be unique ignoring case, and explicit subdomains must be unique
// and must not collide with another profile's slug. A derived label shared by
// several profiles is left unroutable.
func New(profiles []domain.Profile) (*Store, error) {
	validate := validator.New()
	s := &Store{
		bySlug:     make(map[string]domain.Profile, len(profiles)),
		byFolded:   make(map[string]string, len(profiles)),
		byExplicit: make(map[string]string),
		byDerived:  make(map[string]string, len(profiles)),
	}

	for i, p := range profiles {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: profile %d (%q): %v", domain.ErrInvalidInput, i, p.Slug, err)
		}
		if !slugPattern.MatchString(p.Slug) {
			return nil, fmt.Errorf("%w: profile %d: slug %q is not URL-safe", domain.ErrInvalidInput, i, p.Slug)
		}
		folded := strings.ToLower(p.Slug)
		if owner, ok := s.byFolded[folded]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", domain.ErrDuplicateSlug, p.Slug, owner)
		}
		s.bySlug[p.Slug] = cloneProfile(p)
		s.byFolded[folded] = p.Slug

		if p.Subdomain == "" {
			continue
		}
		label := strings.ToLower(p.Subdomain)
		if owner, ok := s.byExplicit[label]; ok {
			return nil, fmt.Errorf("%w: %q is claimed by %q and %q", domain.ErrDuplicateSubdomain, label, owner, p.Slug)
		}
		s.byExplicit[label] = p.Slug
	}

	for label, slug := range s.byExplicit {
		if owner, ok := s.byFolded[label]; ok && owner != slug {
			return nil, fmt.Errorf("%w: %q of %q is the slug of %q", domain.ErrDuplicateSubdomain, label, slug, owner)
		}
	}

	for _, p := range profiles {
		if p.Subdomain != "" {
			continue
		}
		label := SubdomainLabel(p)
		owner, ok := s.byDerived[label]
		switch {
		case !ok:
			s.byDerived[label] = p.Slug
		case owner != "":
			slog.Warn("subdomain label is ambiguous and will not route", "label", label, "slugs", []string{owner, p.Slug})
			s.byDerived[label] = ""
		default:
			slog.Warn("subdomain label is ambiguous and will not route", "label", label, "slug", p.Slug)
		}
	}

	return s, nil
}

// FindBySlug returns the profile whose slug equals slug exactly.
func (s *Store) FindBySlug(slug string) (domain.Profile, bool) {
	p, ok := s.bySlug[slug]
	if !ok {
		return domain.Profile{}, false
	}
	return cloneProfile(p), true
}

// FindBySubdomain returns the profile answering to a DNS label. Host names
// are case-insensitive, so the label is folded before matching. A slug match
// wins over an explicit subdomain, which wins over a derived label.
func (s *Store) FindBySubdomain(label string) (domain.Profile, bool) {
	label = strings.ToLower(label)
	if slug, ok := s.byFolded[label]; ok {
		return s.FindBySlug(slug)
	}
	if slug, ok := s.byExplicit[label]; ok {
		return s.FindBySlug(slug)
	}
	if slug := s.byDerived[label]; slug != "" {
		return s.FindBySlug(slug)
	}
	return domain.Profile{}, false
}

// Slugs returns every slug in the directory, sorted.
func (s *Store) Slugs() []string {
	slugs := make([]string, 0, len(s.bySlug))
	for slug := range s.bySlug {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	return len(s.bySlug)
}

// Label returns the subdomain label that routes to slug, or "" when the
// profile is only reachable by its slug.
func (s *Store) Label(slug string) string {
	p, ok := s.bySlug[slug]
	if !ok {
		return ""
	}
	label := SubdomainLabel(p)
	if p.Subdomain == "" && s.byDerived[label] != slug {
		return ""
	}
	return label
}

// SubdomainLabel returns the DNS label a profile answers to: its explicit
// Subdomain, else the first hyphen-separated segment of its slug.
func SubdomainLabel(p domain.Profile) string {
	if p.Subdomain != "" {
		return strings.ToLower(p.Subdomain)
	}
	first, _, _ := strings.Cut(p.Slug, "-")
	return strings.ToLower(first)
}

// cloneProfile copies the localized maps so callers cannot mutate the store.
func cloneProfile(p domain.Profile) domain.Profile {
	p.Title = cloneLocalized(p.Title)
	p.Company = cloneLocalized(p.Company)
	return p
}

func cloneLocalized(l domain.Localized) domain.Localized {
	if l == nil {
		return nil
	}
	out := make(domain.Localized, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
