// Package domain contains the core domain models of the shared export optimizer:
// runtime specs, the export-usage lattice, the usage table and session state.
package domain

import (
	"maps"
	"slices"
)

// SessionID identifies one build session of the host pipeline.
type SessionID uint64

// ProvidePair links the provide module of a share key to its local fallback module.
type ProvidePair struct {
	Provide  ModuleID
	Fallback ModuleID
}

// Session is the optimizer state owned by one build session.
// The holder of a *Session has exclusive use of it for the duration of a pass.
type Session struct {
	ID SessionID
	// Table accumulates the used exports per share key and runtime.
	Table *UsageTable
	// Runtimes holds every runtime observed by the collector, keyed by its projection.
	Runtimes map[string]RuntimeSpec
	// Pairs maps share keys to their provide/fallback modules.
	Pairs map[string]ProvidePair
}

// NewSession creates an empty session seeded with one table entry per share key.
func NewSession(id SessionID, shareKeys []string) *Session {
	return &Session{
		ID:       id,
		Table:    NewUsageTable(shareKeys),
		Runtimes: make(map[string]RuntimeSpec),
		Pairs:    make(map[string]ProvidePair),
	}
}

// Reset clears all derived state and reseeds the table.
func (s *Session) Reset(shareKeys []string) {
	s.Table.Reset(shareKeys)
	clear(s.Runtimes)
	clear(s.Pairs)
}

// RegisterRuntime records rt under its projection if it is new and returns the
// registered spec.
func (s *Session) RegisterRuntime(rt RuntimeSpec) RuntimeSpec {
	key := rt.String()
	if registered, ok := s.Runtimes[key]; ok {
		return registered
	}
	s.Runtimes[key] = rt
	return rt
}

// RuntimeKeys returns the observed runtime projections in order.
func (s *Session) RuntimeKeys() []string {
	return slices.Sorted(maps.Keys(s.Runtimes))
}

// PairKeys returns the share keys that have a provide/fallback pair, in order.
func (s *Session) PairKeys() []string {
	return slices.Sorted(maps.Keys(s.Pairs))
}
