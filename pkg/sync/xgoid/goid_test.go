package xgoid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCurrentStable(t *testing.T) {
	id := Current()
	assert.NotEqual(t, None, id)
	assert.Positive(t, id)
	assert.Equal(t, id, Current())
}

func TestCurrentDistinctAcrossLiveGoroutines(t *testing.T) {
	const n = 64

	var (
		wg      sync.WaitGroup
		ready   sync.WaitGroup
		release = make(chan struct{})
		ids     = make([]int64, n)
	)
	ready.Add(n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = Current()
			ready.Done()
			// 保持存活，直到所有 ID 都已采集，避免运行时复用 g 结构。
			<-release
		}()
	}
	ready.Wait()
	close(release)
	wg.Wait()

	seen := make(map[int64]struct{}, n+1)
	seen[Current()] = struct{}{}
	for _, id := range ids {
		require.NotEqual(t, None, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate goroutine id %d", id)
		seen[id] = struct{}{}
	}
}
