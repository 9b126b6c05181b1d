package graph

import (
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strings"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultActivityKey sets the liveness of an edge for runtimes it does not list.
const defaultActivityKey = "*"

// Snapshot is the JSON form of a module and chunk graph.
type Snapshot struct {
	Chunks  []ChunkSnapshot  `json:"chunks"`
	Modules []ModuleSnapshot `json:"modules"`
}

// ChunkSnapshot describes one chunk. Runtime lists comma-separated runtime names.
type ChunkSnapshot struct {
	ID      string   `json:"id"`
	Runtime string   `json:"runtime"`
	Entry   bool     `json:"entry,omitempty"`
	Modules []string `json:"modules"`
}

// ModuleSnapshot describes one module and its outgoing edges.
type ModuleSnapshot struct {
	ID             string                       `json:"id"`
	Kind           string                       `json:"kind,omitempty"`
	ShareKey       string                       `json:"shareKey,omitempty"`
	SideEffectFree bool                         `json:"sideEffectFree,omitempty"`
	Dependencies   []DependencySnapshot         `json:"dependencies,omitempty"`
	Exports        map[string]map[string]string `json:"exports,omitempty"`
	OtherExports   map[string]string            `json:"otherExports,omitempty"`
}

// DependencySnapshot describes one edge. Activity maps runtimes to liveness states;
// runtimes absent from it are active unless the "*" key says otherwise.
type DependencySnapshot struct {
	Kind              string              `json:"kind"`
	Request           string              `json:"request,omitempty"`
	Target            string              `json:"target"`
	ReferencedExports []string            `json:"referencedExports,omitempty"`
	RuntimeExports    map[string][]string `json:"runtimeExports,omitempty"`
	Activity          map[string]string   `json:"activity,omitempty"`
}

// Loader reads graph snapshots from disk.
type Loader struct{}

var _ ports.GraphLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the snapshot at path.
func (l *Loader) Load(path string) (ports.ModuleGraph, ports.ChunkGraph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrGraphReadFailed.Error()), "path", path)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, nil, zerr.With(err, "path", path)
	}
	return g, g, nil
}

// Parse builds and validates a Graph from snapshot JSON.
func Parse(data []byte) (*Graph, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGraphParseFailed.Error())
	}
	return snap.Build()
}

// Build creates a Graph from the snapshot.
func (s *Snapshot) Build() (*Graph, error) {
	g := NewGraph()

	for i := range s.Modules {
		spec := &s.Modules[i]
		kind, ok := domain.ParseModuleKind(spec.Kind)
		if !ok {
			return nil, invalidSnapshot(spec.ID, "kind", spec.Kind)
		}
		module := domain.Module{
			ID:       domain.NewModuleID(spec.ID),
			Kind:     kind,
			ShareKey: spec.ShareKey,
		}
		if err := g.AddModule(module, spec.SideEffectFree); err != nil {
			return nil, err
		}
		info, _ := g.ExportsInfo(module.ID)
		if err := seedExports(info, spec); err != nil {
			return nil, err
		}
	}

	for i := range s.Modules {
		spec := &s.Modules[i]
		from := domain.NewModuleID(spec.ID)
		for _, dep := range spec.Dependencies {
			edge, err := newEdgeFromSnapshot(spec.ID, dep)
			if err != nil {
				return nil, err
			}
			if err := g.AddConnection(from, edge); err != nil {
				return nil, err
			}
		}
	}

	for _, chunk := range s.Chunks {
		modules := make([]domain.ModuleID, 0, len(chunk.Modules))
		for _, id := range chunk.Modules {
			modules = append(modules, domain.NewModuleID(id))
		}
		if err := g.AddChunk(domain.ChunkID(chunk.ID), ParseRuntime(chunk.Runtime), chunk.Entry, modules...); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func seedExports(info *domain.ExportsInfo, spec *ModuleSnapshot) error {
	for _, name := range slices.Sorted(maps.Keys(spec.Exports)) {
		export := info.EnsureExport(name)
		states := spec.Exports[name]
		for _, runtime := range slices.Sorted(maps.Keys(states)) {
			state, ok := domain.ParseUsageState(states[runtime])
			if !ok {
				return invalidSnapshot(spec.ID, "exports."+name, states[runtime])
			}
			export.SetUsed(state, ParseRuntime(runtime))
		}
	}
	for _, runtime := range slices.Sorted(maps.Keys(spec.OtherExports)) {
		state, ok := domain.ParseUsageState(spec.OtherExports[runtime])
		if !ok {
			return invalidSnapshot(spec.ID, "otherExports", spec.OtherExports[runtime])
		}
		info.Other().SetUsed(state, ParseRuntime(runtime))
	}
	return nil
}

func newEdgeFromSnapshot(origin string, dep DependencySnapshot) (*Edge, error) {
	kind, ok := domain.ParseDependencyKind(dep.Kind)
	if !ok {
		return nil, invalidSnapshot(origin, "dependencies.kind", dep.Kind)
	}

	opts := []EdgeOption{WithReferencedExports(dep.ReferencedExports...)}
	for runtime, names := range dep.RuntimeExports {
		opts = append(opts, WithRuntimeExports(ParseRuntime(runtime).String(), names...))
	}
	for _, runtime := range slices.Sorted(maps.Keys(dep.Activity)) {
		state, ok := domain.ParseConnectionState(dep.Activity[runtime])
		if !ok {
			return nil, invalidSnapshot(origin, "dependencies.activity", dep.Activity[runtime])
		}
		if runtime == defaultActivityKey {
			opts = append(opts, WithDefaultActivity(state))
			continue
		}
		opts = append(opts, WithActivity(ParseRuntime(runtime).String(), state))
	}
	return NewEdge(kind, dep.Request, domain.NewModuleID(dep.Target), opts...), nil
}

func invalidSnapshot(module, field, value string) error {
	return zerr.With(zerr.With(zerr.With(domain.ErrInvalidSnapshot, "module", module), "field", field), "value", value)
}

// ParseRuntime converts a comma-separated list of runtime names to a RuntimeSpec.
func ParseRuntime(s string) domain.RuntimeSpec {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return domain.NewRuntimeSpec(parts...)
}
