// Package stress 对互斥锁后端运行并发压测场景。
//
// 后端按名称注册（见 [Backends]），每个名称都有一个 "debug-" 前缀的变体，
// 以 xmutex.DebugMutex 包装同一后端；"mutex" 是编译期选定的 xmutex.Mutex 本身。场景：
//
//   - exclusion：多个 goroutine 反复加锁，临界区内执行两次相互依赖的非原子写入，
//     结束时校验计数无丢失，并在持有期间探测 TryLock 必须失败。
//   - wakeup：持有者反复释放并重新获取锁，期间所有等待者都必须在有限轮次内拿到锁。
//
// 结果通过 xlog 输出，通过 xmetrics 记录。
package stress
