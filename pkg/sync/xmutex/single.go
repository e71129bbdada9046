package xmutex

// SingleMutex 用于只存在一个执行上下文的程序，不做任何同步。
// 零值为未加锁状态。
//
// 在单上下文中 Lock 一个已加锁的 SingleMutex 意味着调用方在等待自己，
// 永远无法满足，因此直接 panic。
type SingleMutex struct {
	locked bool
}

// TryLock 见 [Backend.TryLock]。
func (m *SingleMutex) TryLock() bool {
	if m.locked {
		return false
	}
	m.locked = true
	return true
}

// Lock 见 [Backend.Lock]。已加锁时以 [ErrDeadlock] panic。
func (m *SingleMutex) Lock() {
	if !m.TryLock() {
		panic(ErrDeadlock)
	}
}

// Unlock 见 [Backend.Unlock]。未加锁时以 [ErrUnlockOfUnlocked] panic。
func (m *SingleMutex) Unlock() {
	if !m.locked {
		panic(ErrUnlockOfUnlocked)
	}
	m.locked = false
}
