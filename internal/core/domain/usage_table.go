package domain

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// RuntimeExportsEntry is one bucket of export names accumulated for one runtime
// under one share key.
type RuntimeExportsEntry struct {
	Runtime RuntimeSpec
	Exports map[string]struct{}
}

// Add unions names into the bucket.
func (e *RuntimeExportsEntry) Add(names ...string) {
	for _, name := range names {
		e.Exports[name] = struct{}{}
	}
}

// Contains reports whether name is in the bucket.
func (e *RuntimeExportsEntry) Contains(name string) bool {
	_, ok := e.Exports[name]
	return ok
}

// Sorted returns the bucket's names in order.
func (e *RuntimeExportsEntry) Sorted() []string {
	return slices.Sorted(maps.Keys(e.Exports))
}

// UsageTable maps share keys to their per-runtime export buckets.
// A runtime appears at most once in a share key's bucket list.
type UsageTable struct {
	shares map[string][]*RuntimeExportsEntry
}

// NewUsageTable creates a table with one empty entry per share key.
func NewUsageTable(shareKeys []string) *UsageTable {
	t := &UsageTable{}
	t.Reset(shareKeys)
	return t
}

// Reset drops every bucket and reseeds one empty entry per share key.
func (t *UsageTable) Reset(shareKeys []string) {
	t.shares = make(map[string][]*RuntimeExportsEntry, len(shareKeys))
	for _, key := range shareKeys {
		t.shares[key] = nil
	}
}

// Has reports whether the table holds an entry for shareKey.
func (t *UsageTable) Has(shareKey string) bool {
	_, ok := t.shares[shareKey]
	return ok
}

// Keys returns the share keys in order.
func (t *UsageTable) Keys() []string {
	return slices.Sorted(maps.Keys(t.shares))
}

// Entries returns the runtime buckets of shareKey in creation order.
func (t *UsageTable) Entries(shareKey string) []*RuntimeExportsEntry {
	return t.shares[shareKey]
}

// Bucket returns the mutable export set for (shareKey, rt), creating an empty
// bucket if the runtime has none yet.
func (t *UsageTable) Bucket(shareKey string, rt RuntimeSpec) map[string]struct{} {
	return t.entry(shareKey, rt).Exports
}

func (t *UsageTable) entry(shareKey string, rt RuntimeSpec) *RuntimeExportsEntry {
	entries := t.shares[shareKey]
	for _, entry := range entries {
		if entry.Runtime.Equal(rt) {
			return entry
		}
	}
	entry := &RuntimeExportsEntry{
		Runtime: rt,
		Exports: make(map[string]struct{}),
	}
	t.shares[shareKey] = append(entries, entry)
	return entry
}

// ClearShare empties every bucket of shareKey while keeping the key and its buckets.
func (t *UsageTable) ClearShare(shareKey string) {
	for _, entry := range t.shares[shareKey] {
		clear(entry.Exports)
	}
}

// Flatten returns, per share key, the sorted union of all its buckets.
// Share keys without any export are omitted.
func (t *UsageTable) Flatten() map[string][]string {
	result := make(map[string][]string)
	for key, entries := range t.shares {
		union := make(map[string]struct{})
		for _, entry := range entries {
			maps.Copy(union, entry.Exports)
		}
		if len(union) == 0 {
			continue
		}
		result[key] = slices.Sorted(maps.Keys(union))
	}
	return result
}

// ProjectByRuntime returns, per share key and runtime string, the sorted export list.
// Empty buckets and share keys left without any bucket are omitted.
func (t *UsageTable) ProjectByRuntime() map[string]map[string][]string {
	result := make(map[string]map[string][]string)
	for key, entries := range t.shares {
		byRuntime := make(map[string][]string)
		for _, entry := range entries {
			if len(entry.Exports) == 0 {
				continue
			}
			runtimeKey := entry.Runtime.String()
			merged := append(byRuntime[runtimeKey], entry.Sorted()...)
			slices.Sort(merged)
			byRuntime[runtimeKey] = slices.Compact(merged)
		}
		if len(byRuntime) > 0 {
			result[key] = byRuntime
		}
	}
	return result
}

// Fingerprint hashes the per-runtime projection so that two passes producing the
// same usage produce the same value.
func (t *UsageTable) Fingerprint() string {
	projection := t.ProjectByRuntime()
	return fingerprint(projection, slices.Sorted(maps.Keys(projection)))
}

// ShareFingerprint hashes the per-runtime projection of one share key.
func (t *UsageTable) ShareFingerprint(shareKey string) string {
	return fingerprint(t.ProjectByRuntime(), []string{shareKey})
}

func fingerprint(projection map[string]map[string][]string, keys []string) string {
	hasher := xxhash.New()

	for _, key := range keys {
		byRuntime, ok := projection[key]
		if !ok {
			continue
		}
		_, _ = hasher.WriteString(key)
		_, _ = hasher.Write([]byte{0})
		for _, runtimeKey := range slices.Sorted(maps.Keys(byRuntime)) {
			_, _ = hasher.WriteString(runtimeKey)
			_, _ = hasher.Write([]byte{'='})
			for _, name := range byRuntime[runtimeKey] {
				_, _ = hasher.WriteString(name)
				_, _ = hasher.Write([]byte{','})
			}
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
