package entity

import (
	"maps"
	"time"
)

// Base carries the identity and bookkeeping fields shared by every aggregate.
// Aggregates embed it by value; it is never mutated after construction.
type Base struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
	isActive  bool
}

// BaseProps is the plain-data projection of Base.
type BaseProps struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
}

func newBase(id string, now time.Time) Base {
	return Base{id: id, createdAt: now, updatedAt: now, isActive: true}
}

func baseFromProps(p BaseProps) Base {
	return Base{id: p.ID, createdAt: p.CreatedAt, updatedAt: p.UpdatedAt, isActive: p.IsActive}
}

func (b Base) ID() string           { return b.id }
func (b Base) CreatedAt() time.Time { return b.createdAt }
func (b Base) UpdatedAt() time.Time { return b.updatedAt }
func (b Base) IsActive() bool       { return b.isActive }

// SameIdentity reports whether both aggregates carry the same non-empty id.
func (b Base) SameIdentity(other Base) bool {
	return b.id != "" && b.id == other.id
}

func (b Base) baseProps() BaseProps {
	return BaseProps{ID: b.id, CreatedAt: b.createdAt, UpdatedAt: b.updatedAt, IsActive: b.isActive}
}

func (b Base) touched(at time.Time) Base {
	b.updatedAt = at
	return b
}

// Metadata is free-form aggregate data persisted as JSON.
type Metadata map[string]any

// Clone returns a shallow copy; nil stays nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Merge returns a new map with patch shallow-merged over m.
func (m Metadata) Merge(patch map[string]any) Metadata {
	out := make(Metadata, len(m)+len(patch))
	maps.Copy(out, m)
	maps.Copy(out, patch)
	return out
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
