package domain

import "unique"

// ModuleID identifies a module in the module graph.
// It wraps a unique.Handle[string] so that ids repeated across edges, pairs and
// lattice lookups share one allocation and compare in constant time.
type ModuleID struct {
	h unique.Handle[string]
}

// NewModuleID creates a new ModuleID from its identifier string.
func NewModuleID(s string) ModuleID {
	return ModuleID{
		h: unique.Make(s),
	}
}

// String returns the underlying identifier.
func (id ModuleID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the id was never assigned.
func (id ModuleID) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (id ModuleID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ModuleID) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}

// ChunkID identifies a chunk in the chunk graph.
type ChunkID string
