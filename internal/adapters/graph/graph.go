// Package graph provides an in-memory module and chunk graph and a loader for JSON
// graph snapshots exported by a bundler.
package graph

import (
	"iter"
	"sync"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

type moduleNode struct {
	module         domain.Module
	sideEffectFree bool
	exports        *domain.ExportsInfo
	edges          []ports.Connection
	chunks         []domain.ChunkID
}

type chunkNode struct {
	runtime domain.RuntimeSpec
	entry   bool
	modules []domain.ModuleID
}

// Graph is an in-memory module graph and chunk graph.
// Modules and chunks are iterated in insertion order.
type Graph struct {
	mu         sync.RWMutex
	modules    map[domain.ModuleID]*moduleNode
	order      []domain.ModuleID
	chunks     map[domain.ChunkID]*chunkNode
	chunkOrder []domain.ChunkID
}

var (
	_ ports.ModuleGraph = (*Graph)(nil)
	_ ports.ChunkGraph  = (*Graph)(nil)
)

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		modules: make(map[domain.ModuleID]*moduleNode),
		chunks:  make(map[domain.ChunkID]*chunkNode),
	}
}

// AddModule adds a module with an empty export lattice.
// It returns an error if a module with the same id already exists.
func (g *Graph) AddModule(module domain.Module, sideEffectFree bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.modules[module.ID]; exists {
		return zerr.With(domain.ErrModuleAlreadyExists, "module", module.ID.String())
	}
	g.modules[module.ID] = &moduleNode{
		module:         module,
		sideEffectFree: sideEffectFree,
		exports:        domain.NewExportsInfo(),
	}
	g.order = append(g.order, module.ID)
	return nil
}

// AddConnection appends an outgoing edge to the module from.
// The edge target is checked by Validate.
func (g *Graph) AddConnection(from domain.ModuleID, edge ports.Connection) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	node, ok := g.modules[from]
	if !ok {
		return zerr.With(domain.ErrMissingModule, "module", from.String())
	}
	node.edges = append(node.edges, edge)
	return nil
}

// AddChunk adds a chunk executing in runtime that contains the given modules.
// Entry chunks carry the runtime code of their runtime.
func (g *Graph) AddChunk(id domain.ChunkID, runtime domain.RuntimeSpec, entry bool, modules ...domain.ModuleID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.chunks[id]; exists {
		return zerr.With(domain.ErrChunkAlreadyExists, "chunk", string(id))
	}
	for _, moduleID := range modules {
		if _, ok := g.modules[moduleID]; !ok {
			return zerr.With(zerr.With(domain.ErrMissingModule, "module", moduleID.String()), "chunk", string(id))
		}
	}
	for _, moduleID := range modules {
		node := g.modules[moduleID]
		node.chunks = append(node.chunks, id)
	}

	g.chunks[id] = &chunkNode{
		runtime: runtime,
		entry:   entry,
		modules: modules,
	}
	g.chunkOrder = append(g.chunkOrder, id)
	return nil
}

// Validate checks that every edge resolves to a module of the graph.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range g.order {
		for _, edge := range g.modules[id].edges {
			target := edge.Target()
			if _, ok := g.modules[target]; !ok {
				return zerr.With(zerr.With(domain.ErrMissingModule, "module", target.String()), "origin", id.String())
			}
		}
	}
	return nil
}

// Modules yields every module id in insertion order.
func (g *Graph) Modules() iter.Seq[domain.ModuleID] {
	return func(yield func(domain.ModuleID) bool) {
		g.mu.RLock()
		order := g.order
		g.mu.RUnlock()

		for _, id := range order {
			if !yield(id) {
				return
			}
		}
	}
}

// Module returns the module with the given id.
func (g *Graph) Module(id domain.ModuleID) (domain.Module, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.modules[id]
	if !ok {
		return domain.Module{}, false
	}
	return node.module, true
}

// Connections returns the outgoing edges of a module.
func (g *Graph) Connections(id domain.ModuleID) []ports.Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.modules[id]
	if !ok {
		return nil
	}
	return node.edges
}

// SideEffectFree reports whether the module is marked free of side effects.
func (g *Graph) SideEffectFree(id domain.ModuleID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.modules[id]
	return ok && node.sideEffectFree
}

// SetSideEffectFree marks the module as free of side effects.
func (g *Graph) SetSideEffectFree(id domain.ModuleID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if node, ok := g.modules[id]; ok {
		node.sideEffectFree = true
	}
}

// ExportsInfo returns the export lattice of a module.
func (g *Graph) ExportsInfo(id domain.ModuleID) (*domain.ExportsInfo, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.modules[id]
	if !ok {
		return nil, false
	}
	return node.exports, true
}

// ModuleRuntimes returns the distinct runtimes of the chunks containing the module,
// in chunk insertion order.
func (g *Graph) ModuleRuntimes(id domain.ModuleID) []domain.RuntimeSpec {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.modules[id]
	if !ok {
		return nil
	}

	var runtimes []domain.RuntimeSpec
	seen := make(map[string]struct{}, len(node.chunks))
	for _, chunkID := range node.chunks {
		rt := g.chunks[chunkID].runtime
		if rt.IsEmpty() {
			continue
		}
		if _, dup := seen[rt.String()]; dup {
			continue
		}
		seen[rt.String()] = struct{}{}
		runtimes = append(runtimes, rt)
	}
	return runtimes
}

// RuntimeChunks returns the entry chunks in insertion order.
func (g *Graph) RuntimeChunks() []domain.ChunkID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var ids []domain.ChunkID
	for _, id := range g.chunkOrder {
		if g.chunks[id].entry {
			ids = append(ids, id)
		}
	}
	return ids
}
