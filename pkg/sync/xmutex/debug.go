package xmutex

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/omeyang/xsync/pkg/observability/xlog"
	"github.com/omeyang/xsync/pkg/sync/xgoid"
)

const (
	opLock   = "lock"
	opUnlock = "unlock"
)

// backendPtr 约束 B 的指针类型实现 Backend，使 DebugMutex 可以内联持有 B。
type backendPtr[B any] interface {
	*B
	Backend
}

// DebugMutex 在任意后端之上记录持有者 goroutine，用于检测误用。零值可用
// （前提是 B 的零值可用）。
//
// 持有者字段只用于诊断，不参与同步。
type DebugMutex[B any, PB backendPtr[B]] struct {
	owner atomic.Int64
	inner B
}

func (m *DebugMutex[B, PB]) backend() PB {
	return PB(&m.inner)
}

// TryLock 见 [Backend.TryLock]。成功时记录调用方为持有者。
func (m *DebugMutex[B, PB]) TryLock() bool {
	if !m.backend().TryLock() {
		return false
	}
	m.owner.Store(xgoid.Current())
	return true
}

// Lock 见 [Backend.Lock]。
// 调用方已持有该锁时，输出报告并以 [ErrDeadlock] panic，不会进入阻塞。
func (m *DebugMutex[B, PB]) Lock() {
	self := xgoid.Current()
	if owner := m.owner.Load(); owner != xgoid.None && owner == self {
		misuse(opLock, ErrDeadlock, owner, self)
	}
	m.backend().Lock()
	m.owner.Store(self)
}

// Unlock 见 [Backend.Unlock]。
// 调用方不是持有者时，输出报告并以 [ErrNotOwner] panic，锁状态保持不变。
func (m *DebugMutex[B, PB]) Unlock() {
	self := xgoid.Current()
	if owner := m.owner.Load(); owner == xgoid.None || owner != self {
		misuse(opUnlock, ErrNotOwner, owner, self)
	}
	m.owner.Store(xgoid.None)
	m.backend().Unlock()
}

// Owner 返回当前记录的持有者 goroutine ID，未持有时为 xgoid.None。
func (m *DebugMutex[B, PB]) Owner() int64 {
	return m.owner.Load()
}

func misuse(op string, cause error, owner, caller int64) {
	err := &MisuseError{Op: op, Owner: owner, Caller: caller, Err: cause}
	xlog.Default().Stack(context.Background(), "xmutex: misuse detected",
		xlog.Op(op),
		xlog.Goroutine(caller),
		slog.Int64("owner", owner),
		xlog.Err(err),
	)
	panic(err)
}
