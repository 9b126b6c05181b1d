package optimizer

import (
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

// markExports transfers the finalized usage of every share key onto its fallback
// module's export lattice.
//
// Every collected name becomes Used for its runtime. A runtime's remaining Unknown
// entries are then flipped to Unused, but only when no export outside the bucket has
// already been resolved for that runtime. A fallback that may have side effects is
// left untouched and its share is cleared, so no metadata is emitted for it.
func (o *Optimizer) markExports(modules ports.ModuleGraph, session *domain.Session) {
	for _, shareKey := range session.PairKeys() {
		pair := session.Pairs[shareKey]

		mustModule(modules, pair.Provide)
		if !modules.SideEffectFree(pair.Provide) {
			modules.SetSideEffectFree(pair.Provide)
		}

		mustModule(modules, pair.Fallback)
		if !modules.SideEffectFree(pair.Fallback) {
			session.Table.ClearShare(shareKey)
			o.logger.Warn("fallback of " + shareKey + " may have side effects, skipping export marking")
			continue
		}

		info, ok := modules.ExportsInfo(pair.Fallback)
		if !ok {
			panic(zerr.With(domain.ErrModuleNotFound, "module", pair.Fallback.String()))
		}

		entries := session.Table.Entries(shareKey)
		for _, entry := range entries {
			for _, name := range entry.Sorted() {
				info.EnsureExport(name).SetUsed(domain.UsageUsed, entry.Runtime)
			}
		}

		for _, entry := range entries {
			if len(entry.Exports) == 0 {
				continue
			}
			if !canMarkUnused(info, entry) {
				continue
			}
			for _, export := range unknownExports(info, entry.Runtime) {
				export.SetUsed(domain.UsageUnused, entry.Runtime)
			}
		}
	}
}

// canMarkUnused reports whether every export already resolved for the entry's runtime
// belongs to the entry.
func canMarkUnused(info *domain.ExportsInfo, entry *domain.RuntimeExportsEntry) bool {
	for name, export := range info.Exports() {
		if export.Used(entry.Runtime) != domain.UsageUnknown && !entry.Contains(name) {
			return false
		}
	}
	return true
}

// unknownExports returns the entries, catch-all included, that are Unknown for rt.
func unknownExports(info *domain.ExportsInfo, rt domain.RuntimeSpec) []*domain.ExportInfo {
	var unknown []*domain.ExportInfo
	for _, export := range info.Exports() {
		if export.Used(rt) == domain.UsageUnknown {
			unknown = append(unknown, export)
		}
	}
	if info.Other().Used(rt) == domain.UsageUnknown {
		unknown = append(unknown, info.Other())
	}
	return unknown
}

// mustModule resolves id or panics: a graph that yields ids it cannot resolve is
// inconsistent.
func mustModule(modules ports.ModuleGraph, id domain.ModuleID) domain.Module {
	module, ok := modules.Module(id)
	if !ok {
		panic(zerr.With(domain.ErrModuleNotFound, "module", id.String()))
	}
	return module
}

// Markers reports, per provide pair in share key order, the state the last pass left
// on the fallback's export lattice for every observed runtime.
func (o *Optimizer) Markers(modules ports.ModuleGraph, session *domain.Session) []domain.FallbackMarkers {
	if !o.Enabled() || session == nil {
		return nil
	}

	runtimes := make([]domain.RuntimeSpec, 0, len(session.Runtimes))
	for _, key := range session.RuntimeKeys() {
		runtimes = append(runtimes, session.Runtimes[key])
	}

	markers := make([]domain.FallbackMarkers, 0, len(session.Pairs))
	for _, shareKey := range session.PairKeys() {
		pair := session.Pairs[shareKey]

		var m domain.FallbackMarkers
		if modules.SideEffectFree(pair.Fallback) {
			if info, ok := modules.ExportsInfo(pair.Fallback); ok {
				m = info.Markers(runtimes)
				m.Marked = true
			}
		}
		m.ShareKey = shareKey
		m.Fallback = pair.Fallback.String()
		m.ProvideSideEffectFree = modules.SideEffectFree(pair.Provide)
		markers = append(markers, m)
	}
	return markers
}
