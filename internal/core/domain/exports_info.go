package domain

import (
	"iter"
	"maps"
	"slices"
)

// ExportInfo records the usage of one export per runtime.
// A runtime without a recorded state is UsageUnknown.
type ExportInfo struct {
	name  string
	usage map[string]UsageState
}

func newExportInfo(name string) *ExportInfo {
	return &ExportInfo{
		name:  name,
		usage: make(map[string]UsageState),
	}
}

// Name returns the export name. The catch-all entry has an empty name.
func (e *ExportInfo) Name() string {
	return e.name
}

// Used returns the usage state for the given runtime.
func (e *ExportInfo) Used(rt RuntimeSpec) UsageState {
	return e.usage[rt.String()]
}

// SetUsed records the usage state for the given runtime.
func (e *ExportInfo) SetUsed(state UsageState, rt RuntimeSpec) {
	if state == UsageUnknown {
		delete(e.usage, rt.String())
		return
	}
	e.usage[rt.String()] = state
}

// ExportsInfo is the export-usage lattice of one module: the individually tracked
// exports plus a catch-all entry covering every export not tracked by name.
type ExportsInfo struct {
	exports map[string]*ExportInfo
	other   *ExportInfo
}

// NewExportsInfo creates an empty lattice.
func NewExportsInfo() *ExportsInfo {
	return &ExportsInfo{
		exports: make(map[string]*ExportInfo),
		other:   newExportInfo(""),
	}
}

// Export returns the tracked entry for name.
func (e *ExportsInfo) Export(name string) (*ExportInfo, bool) {
	info, ok := e.exports[name]
	return info, ok
}

// EnsureExport returns the tracked entry for name, creating it if needed.
// A new entry starts from the catch-all entry's states, which covered it until now.
func (e *ExportsInfo) EnsureExport(name string) *ExportInfo {
	if info, ok := e.exports[name]; ok {
		return info
	}
	info := newExportInfo(name)
	maps.Copy(info.usage, e.other.usage)
	e.exports[name] = info
	return info
}

// Exports yields the tracked entries ordered by name.
func (e *ExportsInfo) Exports() iter.Seq2[string, *ExportInfo] {
	return func(yield func(string, *ExportInfo) bool) {
		for _, name := range slices.Sorted(maps.Keys(e.exports)) {
			if !yield(name, e.exports[name]) {
				return
			}
		}
	}
}

// Other returns the catch-all entry.
func (e *ExportsInfo) Other() *ExportInfo {
	return e.other
}

// Len returns the number of tracked exports.
func (e *ExportsInfo) Len() int {
	return len(e.exports)
}
