package domain

import "time"

// UsageReport is the finalized usage of one share key at the end of a pass.
type UsageReport struct {
	ShareKey    string              `json:"share_key,omitzero"`
	UsedExports []string            `json:"used_exports,omitzero"`
	Runtimes    map[string][]string `json:"runtimes,omitzero"`
	Fingerprint string              `json:"fingerprint,omitzero"`
	Timestamp   time.Time           `json:"timestamp,omitzero"`
}

// Reports returns one report per share key of the table, in key order. Share keys
// without usage produce a report with no exports.
func (t *UsageTable) Reports(now time.Time) []UsageReport {
	flat := t.Flatten()
	projection := t.ProjectByRuntime()

	keys := t.Keys()
	reports := make([]UsageReport, 0, len(keys))
	for _, key := range keys {
		reports = append(reports, UsageReport{
			ShareKey:    key,
			UsedExports: flat[key],
			Runtimes:    projection[key],
			Fingerprint: fingerprint(projection, []string{key}),
			Timestamp:   now,
		})
	}
	return reports
}
