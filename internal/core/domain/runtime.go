package domain

import (
	"slices"
	"strings"
)

// runtimeSeparator joins the names of a multi-runtime spec in its string projection.
const runtimeSeparator = "_"

// RuntimeSpec identifies a reachable subset of the build's execution runtimes.
// Two specs are interchangeable iff their String projections are equal.
type RuntimeSpec struct {
	key   string
	names []string
}

// NewRuntimeSpec creates a RuntimeSpec from runtime names.
// Names are sorted and de-duplicated; empty names are dropped.
func NewRuntimeSpec(names ...string) RuntimeSpec {
	sorted := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			sorted = append(sorted, name)
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return RuntimeSpec{
		key:   strings.Join(sorted, runtimeSeparator),
		names: sorted,
	}
}

// String returns the stable projection used as map key and in emitted metadata.
func (r RuntimeSpec) String() string {
	return r.key
}

// Names returns a copy of the runtime names in sorted order.
func (r RuntimeSpec) Names() []string {
	return slices.Clone(r.names)
}

// IsEmpty reports whether the spec names no runtime.
func (r RuntimeSpec) IsEmpty() bool {
	return len(r.names) == 0
}

// Equal reports whether both specs have the same projection.
func (r RuntimeSpec) Equal(other RuntimeSpec) bool {
	return r.key == other.key
}
