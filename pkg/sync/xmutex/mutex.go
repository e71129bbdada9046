package xmutex

// Mutex 是互斥锁。零值为未加锁状态。
//
// 实际行为由编译期选定的后端决定，见包文档。Mutex 首次使用后不得复制；
// 在加锁状态或有等待者时销毁属于未定义行为。
type Mutex struct {
	_    noCopy
	impl impl
}

// TryLock 尝试非阻塞获取锁，成功返回 true。
func (m *Mutex) TryLock() bool { return m.impl.TryLock() }

// Lock 获取锁，必要时阻塞。同一调用方重复 Lock 属于未定义行为
// （调试构建中 panic）。
func (m *Mutex) Lock() { m.impl.Lock() }

// Unlock 释放锁。非持有者调用属于未定义行为（调试构建中 panic）。
func (m *Mutex) Unlock() { m.impl.Unlock() }

// noCopy 让 go vet 的 copylocks 检查覆盖所有后端（SingleMutex 本身不含锁字段）。
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
