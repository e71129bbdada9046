package stress

import "errors"

var (
	// ErrUnknownBackend 未注册的后端名称
	ErrUnknownBackend = errors.New("stress: unknown backend")

	// ErrUnknownScenario 未知的场景名称
	ErrUnknownScenario = errors.New("stress: unknown scenario")

	// ErrInvalidConfig 配置取值非法
	ErrInvalidConfig = errors.New("stress: invalid config")

	// ErrExclusionViolated 检测到两个 goroutine 同时处于临界区
	ErrExclusionViolated = errors.New("stress: mutual exclusion violated")

	// ErrStarvation 等待者未能在限定轮次内获取锁
	ErrStarvation = errors.New("stress: waiter never acquired the lock")
)

// ErrTimeout 场景未在超时前结束，通常意味着后端死锁或丢失唤醒
var ErrTimeout = errors.New("stress: run timed out")
