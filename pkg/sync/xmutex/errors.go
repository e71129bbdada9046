package xmutex

import (
	"errors"
	"fmt"
)

var (
	// ErrDeadlock 表示调用方试图获取自己已持有的锁。
	ErrDeadlock = errors.New("xmutex: deadlock detected")

	// ErrNotOwner 表示调用方释放了不属于自己的锁。
	ErrNotOwner = errors.New("xmutex: unlock by non-owner")

	// ErrUnlockOfUnlocked 表示释放了未加锁的互斥锁。
	ErrUnlockOfUnlocked = errors.New("xmutex: unlock of unlocked mutex")
)

// MisuseError 是 DebugMutex 检测到误用时 panic 的值。
// 通过 errors.Is 可匹配 [ErrDeadlock] 或 [ErrNotOwner]。
type MisuseError struct {
	// Op 是触发检测的操作（"lock" 或 "unlock"）。
	Op string
	// Owner 是检测时记录的持有者 goroutine ID，未持有时为 xgoid.None。
	Owner int64
	// Caller 是调用方 goroutine ID。
	Caller int64
	// Err 是底层的哨兵错误。
	Err error
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("%v (op=%s owner=%d caller=%d)", e.Err, e.Op, e.Owner, e.Caller)
}

func (e *MisuseError) Unwrap() error {
	return e.Err
}
