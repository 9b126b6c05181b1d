package optimizer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/engine/optimizer"
)

func TestRegistry_Lifecycle(t *testing.T) {
	registry := optimizer.NewRegistry()

	session := registry.Create([]string{"react", "lodash"})
	require.NotNil(t, session)
	assert.True(t, session.Table.Has("react"))
	assert.True(t, session.Table.Has("lodash"))
	assert.Empty(t, session.Table.Entries("react"))
	assert.Equal(t, 1, registry.Len())

	got, ok := registry.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)

	registry.Remove(session.ID)
	_, ok = registry.Get(session.ID)
	assert.False(t, ok)
	assert.Zero(t, registry.Len())

	// Removing twice is harmless.
	registry.Remove(session.ID)
}

func TestRegistry_UniqueIDs(t *testing.T) {
	registry := optimizer.NewRegistry()

	var mu sync.Mutex
	seen := make(map[uint64]struct{})

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			session := registry.Create([]string{"react"})
			mu.Lock()
			defer mu.Unlock()
			seen[uint64(session.ID)] = struct{}{}
		})
	}
	wg.Wait()

	assert.Len(t, seen, 32)
	assert.Equal(t, 32, registry.Len())
}
