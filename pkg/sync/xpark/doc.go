// Package xpark 提供按内存地址休眠/唤醒（wait/wake）的原语。
//
// 语义与 Linux futex 一致：
//
//   - Wait(addr, expect)：当 *addr 仍等于 expect 时阻塞调用方；
//     若值已变化则立即返回。允许虚假返回，调用方必须重新检查状态。
//   - Wake(addr, n)：唤醒至多 n 个休眠在 addr 上的调用方。
//
// # 实现
//
//	实现      平台     说明
//	─────────────────────────────────────────────
//	Futex     linux    FUTEX_WAIT/WAKE_PRIVATE 系统调用
//	Table     全平台   按地址分片的停车场（parking lot）
//	Lot       全平台   委托给进程级共享 Table 的零大小类型
//	Default   -        所有平台均为 Lot
//
// Futex 会阻塞所在的系统线程（运行时会为其他 goroutine 另起线程），
// 每个等待者占一个线程，大量等待者会触发 "thread exhaustion"，因此不作为默认值；
// Table 只阻塞 goroutine，代价是一次分片锁和一次 channel 收发。
//
// # 不丢失唤醒
//
// Table 在分片锁内检查 *addr 并入队，Wake 在同一分片锁内出队。
// 因此先改值再 Wake 的唤醒方，要么看到已入队的等待者，
// 要么等待者在入队前就看到了新值。
package xpark
