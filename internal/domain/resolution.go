package domain

// RequestContext is what the routing layer knows about an incoming request.
type RequestContext struct {
	PathParam string // slug from /id/{slug}; empty at the root
	HostName  string // Host header, possibly with a port
}

// OutcomeKind discriminates the result of resolving a request.
type OutcomeKind int

const (
	Found OutcomeKind = iota
	// NotFoundDefault is a path-mode miss; Profile holds the fallback.
	NotFoundDefault
	// NotFoundSubdomain is a subdomain-mode miss; AttemptedKey holds the label.
	NotFoundSubdomain
)

func (k OutcomeKind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFoundDefault:
		return "not_found_default"
	case NotFoundSubdomain:
		return "not_found_subdomain"
	}
	return "unknown"
}

// Outcome is the result of resolving a RequestContext.
type Outcome struct {
	Kind         OutcomeKind
	Profile      Profile
	AttemptedKey string
}
