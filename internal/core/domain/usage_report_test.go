package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/core/domain"
)

func TestUsageTable_Reports(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	table := domain.NewUsageTable([]string{"react", "lodash"})
	table.Bucket("react", domain.NewRuntimeSpec("main"))["useState"] = struct{}{}
	table.Bucket("react", domain.NewRuntimeSpec("admin"))["useMemo"] = struct{}{}

	reports := table.Reports(now)
	require.Len(t, reports, 2)

	lodash, react := reports[0], reports[1]
	assert.Equal(t, "lodash", lodash.ShareKey)
	assert.Empty(t, lodash.UsedExports)
	assert.Empty(t, lodash.Runtimes)

	assert.Equal(t, "react", react.ShareKey)
	assert.Equal(t, []string{"useMemo", "useState"}, react.UsedExports)
	assert.Equal(t, map[string][]string{
		"admin": {"useMemo"},
		"main":  {"useState"},
	}, react.Runtimes)
	assert.Equal(t, now, react.Timestamp)
	assert.Equal(t, table.ShareFingerprint("react"), react.Fingerprint)
	assert.NotEqual(t, lodash.Fingerprint, react.Fingerprint)
}

func TestUsageTable_ShareFingerprintIsolated(t *testing.T) {
	a := domain.NewUsageTable([]string{"react", "lodash"})
	a.Bucket("react", domain.NewRuntimeSpec("main"))["useState"] = struct{}{}

	b := domain.NewUsageTable([]string{"react", "lodash"})
	b.Bucket("react", domain.NewRuntimeSpec("main"))["useState"] = struct{}{}
	b.Bucket("lodash", domain.NewRuntimeSpec("main"))["debounce"] = struct{}{}

	assert.Equal(t, a.ShareFingerprint("react"), b.ShareFingerprint("react"))
	assert.NotEqual(t, a.ShareFingerprint("lodash"), b.ShareFingerprint("lodash"))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
