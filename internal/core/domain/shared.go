package domain

// SharedSpec is the optimizer configuration of one share key.
type SharedSpec struct {
	ShareKey string
	// TreeShake enables export analysis for the share key.
	TreeShake bool
	// UsedExports are always treated as used in every observed runtime.
	UsedExports []string
}

// OverrideMap lists exports forced to be used per share key, loaded from an
// out-of-band source.
type OverrideMap map[string][]string

// Lookup returns the override list of shareKey, or nil.
func (m OverrideMap) Lookup(shareKey string) []string {
	if m == nil {
		return nil
	}
	return m[shareKey]
}

// Merge unions other into m and returns m.
func (m OverrideMap) Merge(other OverrideMap) OverrideMap {
	if m == nil {
		m = make(OverrideMap, len(other))
	}
	for key, names := range other {
		seen := make(map[string]struct{}, len(m[key]))
		for _, name := range m[key] {
			seen[name] = struct{}{}
		}
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			m[key] = append(m[key], name)
		}
	}
	return m
}

// Options is the construction-time configuration of the optimizer.
type Options struct {
	Shared          []SharedSpec
	IgnoredRuntimes []string
	Overrides       OverrideMap
	// Parallelism bounds the collector's worker pool. Values below 1 select the
	// number of CPUs.
	Parallelism int
}
