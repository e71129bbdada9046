package xmutex

import "sync"

// Backend 是所有互斥锁实现共享的能力集合。
type Backend interface {
	// TryLock 尝试非阻塞获取锁，成功返回 true。失败时不产生任何副作用。
	TryLock() bool
	// Lock 获取锁，必要时阻塞调用方。不可重入。
	Lock()
	// Unlock 释放锁。调用方必须是当前持有者。
	Unlock()
}

// 编译期接口检查。
var (
	_ Backend     = (*Mutex)(nil)
	_ Backend     = (*SingleMutex)(nil)
	_ Backend     = (*NativeMutex)(nil)
	_ Backend     = (*ExclusiveRWMutex)(nil)
	_ Backend     = (*GenericMutex)(nil)
	_ Backend     = (*DebugMutex[GenericMutex, *GenericMutex])(nil)
	_ sync.Locker = (*Mutex)(nil)
)
