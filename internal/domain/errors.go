package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrDuplicateSubdomain = errors.New("subdomain already exists")
)
