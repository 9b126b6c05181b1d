// Package ports defines the core interfaces for the application.
package ports

import (
	"iter"

	"go.trai.ch/sharetree/internal/core/domain"
)

// ModuleGraph is the host bundler's module graph as consumed by the optimizer.
//
//go:generate go run go.uber.org/mock/mockgen -source=module_graph.go -destination=mocks/mock_module_graph.go -package=mocks
type ModuleGraph interface {
	// Modules yields every module id in a stable order.
	Modules() iter.Seq[domain.ModuleID]

	// Module returns the module with the given id.
	Module(id domain.ModuleID) (domain.Module, bool)

	// Connections returns the outgoing dependency edges of a module.
	Connections(id domain.ModuleID) []Connection

	// SideEffectFree reports whether the module is known to be free of side effects.
	SideEffectFree(id domain.ModuleID) bool

	// SetSideEffectFree marks the module as free of side effects. It never unmarks.
	SetSideEffectFree(id domain.ModuleID)

	// ExportsInfo returns the export-usage lattice of a module.
	ExportsInfo(id domain.ModuleID) (*domain.ExportsInfo, bool)
}

// Connection is an outgoing dependency edge of a module.
type Connection interface {
	// Kind returns the dependency kind of the edge.
	Kind() domain.DependencyKind

	// Request returns the request string the edge was created from (e.g. "react").
	Request() string

	// Target returns the module the edge resolves to.
	Target() domain.ModuleID

	// ActiveState returns the liveness of the edge in the given runtime.
	ActiveState(rt domain.RuntimeSpec) domain.ConnectionState

	// ReferencedExports returns the export names the edge references in the given runtime.
	ReferencedExports(rt domain.RuntimeSpec) []string
}

// ChunkGraph is the host bundler's chunk graph as consumed by the optimizer.
type ChunkGraph interface {
	// ModuleRuntimes returns the runtimes in which the module is scheduled to execute.
	ModuleRuntimes(id domain.ModuleID) []domain.RuntimeSpec

	// RuntimeChunks returns the chunks that carry a runtime.
	RuntimeChunks() []domain.ChunkID
}
