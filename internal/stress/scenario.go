package stress

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xsync/pkg/sync/xmutex"
)

// cycleDelay 是 wakeup 场景中持有者每轮释放后让出的时间，给等待者抢锁的机会。
const cycleDelay = 50 * time.Microsecond

type scenarioFunc func(ctx context.Context, m xmutex.Backend, cfg Config) (int64, error)

var scenarioFuncs = map[string]scenarioFunc{
	ScenarioExclusion: runExclusion,
	ScenarioWakeup:    runWakeup,
}

// critical 是 exclusion 场景的临界区数据，只能在持有锁时访问。
type critical struct {
	holders atomic.Int32
	a, b    int64
}

func (c *critical) enter(m xmutex.Backend) error {
	defer c.holders.Add(-1)
	if n := c.holders.Add(1); n != 1 {
		return fmt.Errorf("%w: %d goroutines inside", ErrExclusionViolated, n)
	}
	if m.TryLock() {
		m.Unlock()
		return fmt.Errorf("%w: TryLock succeeded on a held lock", ErrExclusionViolated)
	}
	c.a = c.b + 1
	c.b = c.a
	return nil
}

func runExclusion(ctx context.Context, m xmutex.Backend, cfg Config) (int64, error) {
	var (
		c        critical
		acquired atomic.Int64
	)
	g, gctx := errgroup.WithContext(ctx)
	for range cfg.Workers {
		g.Go(func() error {
			for range cfg.Iterations {
				if err := gctx.Err(); err != nil {
					return err
				}
				m.Lock()
				err := c.enter(m)
				m.Unlock()
				if err != nil {
					return err
				}
				acquired.Add(1)
			}
			return nil
		})
	}
	if err := wait(ctx, g); err != nil {
		return acquired.Load(), err
	}

	want := int64(cfg.Workers) * int64(cfg.Iterations)
	if c.b != want {
		return acquired.Load(), fmt.Errorf("%w: counter %d, want %d", ErrExclusionViolated, c.b, want)
	}
	return acquired.Load(), nil
}

func runWakeup(ctx context.Context, m xmutex.Backend, cfg Config) (int64, error) {
	var acquired atomic.Int64
	m.Lock()

	g := new(errgroup.Group)
	for range cfg.Waiters {
		g.Go(func() error {
			m.Lock()
			acquired.Add(1)
			m.Unlock()
			return nil
		})
	}

	// 循环条件在持有锁时求值，此时已计数的等待者都已释放锁。
	want := int64(cfg.Waiters)
	cycles := 0
	for acquired.Load() < want && cycles < cfg.Cycles && ctx.Err() == nil {
		m.Unlock()
		time.Sleep(cycleDelay)
		m.Lock()
		cycles++
	}
	got := acquired.Load()
	m.Unlock()

	owner := int64(cycles) + 1
	if got < want && ctx.Err() != nil {
		return got + owner, fmt.Errorf("%w: %d of %d waiters: %w", ErrTimeout, got, want, ctx.Err())
	}
	if got < want {
		return got + owner, fmt.Errorf("%w: %d of %d waiters after %d cycles", ErrStarvation, got, want, cycles)
	}
	if err := wait(ctx, g); err != nil {
		return got + owner, err
	}
	return got + owner, nil
}

// wait 等待 g 结束或 ctx 到期。到期时 g 中的 goroutine 可能仍阻塞在锁上。
func wait(ctx context.Context, g *errgroup.Group) error {
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
}
