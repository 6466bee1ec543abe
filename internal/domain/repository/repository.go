package repository

import "errors"

var (
	// ErrNotFound is returned by every repository when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListOptions paginates List queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps the limit to (0, MaxLimit] and the offset to >= 0.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

// Page is one slice of a List result plus the total number of matches.
type Page[T any] struct {
	Items []T
	Total int
}
