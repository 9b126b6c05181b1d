package graph

import (
	"slices"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
)

// Edge is a dependency edge with static per-runtime liveness and referenced exports.
type Edge struct {
	kind       domain.DependencyKind
	request    string
	target     domain.ModuleID
	referenced []string
	byRuntime  map[string][]string
	activity   map[string]domain.ConnectionState
	fallback   domain.ConnectionState
}

var _ ports.Connection = (*Edge)(nil)

// EdgeOption configures an Edge.
type EdgeOption func(*Edge)

// WithReferencedExports sets the export names the edge references in every runtime.
func WithReferencedExports(names ...string) EdgeOption {
	return func(e *Edge) {
		e.referenced = names
	}
}

// WithRuntimeExports sets the export names the edge references in one runtime,
// replacing the runtime-independent list for it.
func WithRuntimeExports(runtime string, names ...string) EdgeOption {
	return func(e *Edge) {
		e.byRuntime[runtime] = names
	}
}

// WithActivity sets the liveness of the edge in one runtime.
func WithActivity(runtime string, state domain.ConnectionState) EdgeOption {
	return func(e *Edge) {
		e.activity[runtime] = state
	}
}

// WithDefaultActivity sets the liveness for runtimes without an explicit state.
func WithDefaultActivity(state domain.ConnectionState) EdgeOption {
	return func(e *Edge) {
		e.fallback = state
	}
}

// NewEdge creates an edge that is active in every runtime.
func NewEdge(kind domain.DependencyKind, request string, target domain.ModuleID, opts ...EdgeOption) *Edge {
	e := &Edge{
		kind:      kind,
		request:   request,
		target:    target,
		byRuntime: make(map[string][]string),
		activity:  make(map[string]domain.ConnectionState),
		fallback:  domain.ConnectionActive,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Kind returns the dependency kind.
func (e *Edge) Kind() domain.DependencyKind { return e.kind }

// Request returns the request string.
func (e *Edge) Request() string { return e.request }

// Target returns the target module.
func (e *Edge) Target() domain.ModuleID { return e.target }

// ActiveState returns the liveness of the edge in rt.
func (e *Edge) ActiveState(rt domain.RuntimeSpec) domain.ConnectionState {
	if state, ok := e.activity[rt.String()]; ok {
		return state
	}
	return e.fallback
}

// ReferencedExports returns the export names the edge references in rt.
func (e *Edge) ReferencedExports(rt domain.RuntimeSpec) []string {
	if names, ok := e.byRuntime[rt.String()]; ok {
		return slices.Clone(names)
	}
	return slices.Clone(e.referenced)
}
