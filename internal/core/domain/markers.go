package domain

// FallbackMarkers is the tree-shaking state a pass left on the fallback module of one
// share key, projected over the runtimes the pass observed.
type FallbackMarkers struct {
	ShareKey string `json:"share_key"`
	Fallback string `json:"fallback"`
	// Marked is false when the fallback may have side effects and export marking was skipped.
	Marked bool `json:"marked"`
	// ProvideSideEffectFree reports the side-effect flag of the provide module.
	ProvideSideEffectFree bool `json:"provide_side_effect_free"`
	// Used and Unused list tracked export names per runtime projection.
	Used   map[string][]string `json:"used,omitzero"`
	Unused map[string][]string `json:"unused,omitzero"`
	// OtherUnused lists the runtimes in which every untracked export is unused.
	OtherUnused []string `json:"other_unused,omitzero"`
}

// Markers projects the lattice over runtimes. Unknown entries are left out.
func (e *ExportsInfo) Markers(runtimes []RuntimeSpec) FallbackMarkers {
	var m FallbackMarkers
	for _, rt := range runtimes {
		key := rt.String()
		for name, export := range e.Exports() {
			switch export.Used(rt) {
			case UsageUsed:
				m.Used = appendName(m.Used, key, name)
			case UsageUnused:
				m.Unused = appendName(m.Unused, key, name)
			}
		}
		if e.other.Used(rt) == UsageUnused {
			m.OtherUnused = append(m.OtherUnused, key)
		}
	}
	return m
}

func appendName(names map[string][]string, key, name string) map[string][]string {
	if names == nil {
		names = make(map[string][]string)
	}
	names[key] = append(names[key], name)
	return names
}
