package xmutex

import (
	"sync/atomic"

	"github.com/omeyang/xsync/pkg/sync/xpark"
)

//go:generate mockgen -destination=mock_parker_test.go -package=xmutex github.com/omeyang/xsync/pkg/sync/xpark Parker

// 状态字取值。locked 只占最低位，unlocked 为全零。
const (
	unlocked  uint32 = 0b00
	locked    uint32 = 0b01
	contended uint32 = 0b11
)

// GenericMutex 是使用平台默认 Parker 的通用后端，零值可用。
type GenericMutex = WaitMutex[xpark.Default]

// WaitMutex 由一个原子状态字和一个 wait/wake 原语构成。
//
// 当 P 是零大小类型（xpark.Lot、xpark.Futex）时，零值可用且只占 4 字节；
// 其他 Parker 需通过 [NewWaitMutex] 注入。
type WaitMutex[P xpark.Parker] struct {
	parker P
	state  atomic.Uint32
}

// NewWaitMutex 创建使用指定 Parker 的 WaitMutex。
func NewWaitMutex[P xpark.Parker](p P) *WaitMutex[P] {
	return &WaitMutex[P]{parker: p}
}

// TryLock 见 [Backend.TryLock]。
func (m *WaitMutex[P]) TryLock() bool {
	return m.state.CompareAndSwap(unlocked, locked)
}

// Lock 见 [Backend.Lock]。
func (m *WaitMutex[P]) Lock() {
	if !m.TryLock() {
		m.lockSlow()
	}
}

// lockSlow 是争用路径。
// 一旦开始等待，就必须以 contended 获取锁，否则释放时不会唤醒其他等待者。
//
//go:noinline
func (m *WaitMutex[P]) lockSlow() {
	// 已知有等待者时直接休眠，省掉一次读-改-写。
	if m.state.Load() == contended {
		m.parker.Wait(&m.state, contended)
	}
	// 被唤醒后不再先读一次 contended，直接 Swap：读到 unlocked 就是拿到了锁。
	for m.state.Swap(contended) != unlocked {
		m.parker.Wait(&m.state, contended)
	}
}

// Unlock 见 [Backend.Unlock]。
// 释放未加锁的 WaitMutex 以 [ErrUnlockOfUnlocked] panic。
func (m *WaitMutex[P]) Unlock() {
	switch m.state.Swap(unlocked) {
	case unlocked:
		panic(ErrUnlockOfUnlocked)
	case contended:
		m.parker.Wake(&m.state, 1)
	}
}
