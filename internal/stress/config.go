package stress

import (
	"fmt"
	"time"
)

// 场景名称
const (
	ScenarioExclusion = "exclusion"
	ScenarioWakeup    = "wakeup"
	// ScenarioAll 依次运行所有场景。
	ScenarioAll = "all"
)

// 默认参数
const (
	DefaultWorkers    = 4
	DefaultIterations = 1000
	DefaultWaiters    = 8
	DefaultCycles     = 10000
	DefaultTimeout    = 30 * time.Second
)

// Config 一次压测的参数。字段标签与 xconf 的 koanf 标签一致，可直接从配置文件反序列化。
type Config struct {
	// Scenario 场景名称，ScenarioAll 表示全部。
	Scenario string `koanf:"scenario"`
	// Backends 参与压测的后端名称，为空时使用全部已注册后端。
	Backends []string `koanf:"backends"`
	// Workers exclusion 场景的并发 goroutine 数。
	Workers int `koanf:"workers"`
	// Iterations exclusion 场景中每个 goroutine 的加锁次数。
	Iterations int `koanf:"iterations"`
	// Waiters wakeup 场景的等待者数量。
	Waiters int `koanf:"waiters"`
	// Cycles wakeup 场景中持有者释放-重获的最大轮次。
	Cycles int `koanf:"cycles"`
	// Timeout 单个（后端, 场景）组合的超时。
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig 返回默认配置：全部场景，全部后端。
func DefaultConfig() Config {
	return Config{
		Scenario:   ScenarioAll,
		Workers:    DefaultWorkers,
		Iterations: DefaultIterations,
		Waiters:    DefaultWaiters,
		Cycles:     DefaultCycles,
		Timeout:    DefaultTimeout,
	}
}

// Validate 校验配置，未知的场景或后端同样视为错误。
func (c Config) Validate() error {
	if _, err := c.scenarios(); err != nil {
		return err
	}
	for _, name := range c.Backends {
		if _, err := Lookup(name); err != nil {
			return err
		}
	}
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case c.Waiters < 1:
		return fmt.Errorf("%w: waiters must be positive, got %d", ErrInvalidConfig, c.Waiters)
	case c.Cycles < 1:
		return fmt.Errorf("%w: cycles must be positive, got %d", ErrInvalidConfig, c.Cycles)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

func (c Config) scenarios() ([]string, error) {
	switch c.Scenario {
	case ScenarioAll, "":
		return []string{ScenarioExclusion, ScenarioWakeup}, nil
	case ScenarioExclusion, ScenarioWakeup:
		return []string{c.Scenario}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, c.Scenario)
	}
}

func (c Config) backends() []string {
	if len(c.Backends) == 0 {
		return Backends()
	}
	return c.Backends
}
