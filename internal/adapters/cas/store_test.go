package cas_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/adapters/cas"
	"go.trai.ch/sharetree/internal/core/domain"
)

func reactReport(fingerprint string) domain.UsageReport {
	return domain.UsageReport{
		ShareKey:    "react",
		UsedExports: []string{"useMemo", "useState"},
		Runtimes:    map[string][]string{"main": {"useMemo", "useState"}},
		Fingerprint: fingerprint,
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "usage.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put(reactReport("aaaa")))

	got, err := store.Get("react")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, reactReport("aaaa"), *got)

	missing, err := store.Get("lodash")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sharetree", "store", "usage.json")

	store1, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.Put(reactReport("aaaa"), domain.UsageReport{ShareKey: "lodash"}))

	store2, err := cas.NewStore(path)
	require.NoError(t, err)

	got, err := store2.Get("react")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "aaaa", got.Fingerprint)
	assert.True(t, got.Timestamp.Equal(reactReport("").Timestamp))

	lodash, err := store2.Get("lodash")
	require.NoError(t, err)
	require.NotNil(t, lodash)
	assert.Empty(t, lodash.UsedExports)
}

func TestStore_OmitZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	store, err := cas.NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.UsageReport{ShareKey: "lodash"}))

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	jsonStr := string(content)
	assert.Contains(t, jsonStr, `"share_key": "lodash"`)
	for _, field := range []string{"used_exports", "runtimes", "fingerprint", "timestamp"} {
		assert.False(t, strings.Contains(jsonStr, field), "zero field %q should be omitted", field)
	}
}

func TestStore_UnchangedFingerprintSkipsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	store, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(reactReport("aaaa")))

	require.NoError(t, os.Remove(path))
	require.NoError(t, store.Put(reactReport("aaaa")))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "unchanged reports must not rewrite the store")

	require.NoError(t, store.Put(reactReport("bbbb")))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := cas.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("react")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ReplacesFileWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usage.json")
	store, err := cas.NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(reactReport("aaaa")))
	require.NoError(t, store.Put(reactReport("bbbb")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "usage.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	reopened, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Get("react")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bbbb", got.Fingerprint)
}
