package xpark

import "sync/atomic"

// Parker 是 wait/wake 原语的能力集合。
// 实现必须是并发安全的，零值可用与否由具体类型说明。
type Parker interface {
	// Wait 在 *addr == expect 期间阻塞调用方。
	// 值已不等于 expect 时立即返回；允许虚假返回。
	Wait(addr *atomic.Uint32, expect uint32)

	// Wake 唤醒至多 n 个休眠在 addr 上的调用方。n <= 0 时不做任何事。
	Wake(addr *atomic.Uint32, n int)
}

// global 是 Lot 使用的进程级停车场。
var global = newTable(defaultOptions())

// Lot 是委托给进程级共享 Table 的零大小 Parker，零值可用。
// 适合嵌入到需要零值初始化的结构体中。
type Lot struct{}

// Wait 见 [Parker.Wait]。
func (Lot) Wait(addr *atomic.Uint32, expect uint32) {
	global.Wait(addr, expect)
}

// Wake 见 [Parker.Wake]。
func (Lot) Wake(addr *atomic.Uint32, n int) {
	global.Wake(addr, n)
}

// Parked 返回共享停车场中休眠在 addr 上的调用方数量。
func (Lot) Parked(addr *atomic.Uint32) int {
	return global.Parked(addr)
}

// Default 是默认 Parker，所有平台都是 [Lot]。
// 等待者只挂起 goroutine，不占用系统线程。
type Default = Lot

// 编译期接口检查。
var (
	_ Parker = Lot{}
	_ Parker = (*Table)(nil)
	_ Parker = Default{}
)
