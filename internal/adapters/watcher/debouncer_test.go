package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/build/graph.json")
		d.Add("/build/sharetree.yaml")
		d.Add("/build/graph.json")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/build/graph.json", "/build/sharetree.yaml"}, calls[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/build/graph.json")
		time.Sleep(60 * time.Millisecond)
		d.Add("/build/graph.json")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot(), "second add must restart the window")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/build/a.json")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/build/b.json")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/build/a.json"}, {"/build/b.json"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/build/graph.json")
		d.Flush()

		assert.Equal(t, [][]string{{"/build/graph.json"}}, rec.snapshot())

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 1, "flushed paths must not fire again")
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		require.NotPanics(t, func() {
			d.Add("/build/graph.json")
			time.Sleep(20 * time.Millisecond)
			synctest.Wait()
			d.Flush()
		})
	})
}
