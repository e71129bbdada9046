package xmutex

import "sync"

// NativeMutex 直接委托给 sync.Mutex。
//
// sync.Mutex 与运行时调度器集成（信号量休眠、饥饿模式），
// 是 Go 平台上的原生互斥原语。零值为未加锁状态。
type NativeMutex struct {
	mu sync.Mutex
}

// TryLock 见 [Backend.TryLock]。
func (m *NativeMutex) TryLock() bool { return m.mu.TryLock() }

// Lock 见 [Backend.Lock]。
func (m *NativeMutex) Lock() { m.mu.Lock() }

// Unlock 见 [Backend.Unlock]。
func (m *NativeMutex) Unlock() { m.mu.Unlock() }

// ExclusiveRWMutex 以独占方式使用 sync.RWMutex，不暴露读锁。零值为未加锁状态。
type ExclusiveRWMutex struct {
	mu sync.RWMutex
}

// TryLock 见 [Backend.TryLock]。
func (m *ExclusiveRWMutex) TryLock() bool { return m.mu.TryLock() }

// Lock 见 [Backend.Lock]。
func (m *ExclusiveRWMutex) Lock() { m.mu.Lock() }

// Unlock 见 [Backend.Unlock]。
func (m *ExclusiveRWMutex) Unlock() { m.mu.Unlock() }
