// Package xmutex 提供进程内互斥锁及其可替换的后端实现。
//
// [Mutex] 的零值即为未加锁状态，可直接嵌入其他结构体或声明为包级变量，
// 无需构造函数。它同时实现 sync.Locker，可与 sync.NewCond 搭配使用。
//
// # 后端选择
//
// 后端在编译期通过 build tag 和目标平台确定（类型别名，无运行时分支）：
//
//	条件                                        后端
//	──────────────────────────────────────────────────────────
//	-tags xmutex_single                         SingleMutex
//	-tags xmutex_native，或 windows/darwin/ios   NativeMutex
//	其余平台（等待者停在共享停车场 xpark.Lot）     GenericMutex
//	-tags xmutex_debug（与 xmutex_single 互斥）   DebugMutex 包装上述后端
//
// 所选后端可通过 [BackendName] 和 [DebugEnabled] 查询。
// 各后端类型也直接导出，可按需单独使用。
//
// # 通用 wait/wake 后端
//
// [WaitMutex] 使用一个 uint32 状态字：
//
//	unlocked  = 0b00  无持有者
//	locked    = 0b01  有持有者，没有已知等待者
//	contended = 0b11  有持有者，且有（或曾有）等待者
//
// 无争用时 Lock/Unlock 各只有一次原子操作。进入等待的一方总是以 contended
// 重新获取锁，保证它释放时仍会唤醒后续等待者，因此不会有等待者被永久遗留。
// 不保证公平：新来的调用方可能抢在长时间等待者之前获得锁。
//
// # 调试包装
//
// [DebugMutex] 记录持有锁的 goroutine：同一 goroutine 重复 Lock 会立即
// panic（[ErrDeadlock]）而不是静默死锁；非持有者 Unlock 会 panic（[ErrNotOwner]）。
// panic 前会通过 xlog 输出带堆栈的报告。正确的程序在有无包装时行为一致。
//
// # 错误处理
//
// 所有操作都不返回错误。违反前置条件（重复加锁、非持有者解锁）在发布构建中
// 属于未定义行为，在调试构建中以 [*MisuseError] panic。
package xmutex
