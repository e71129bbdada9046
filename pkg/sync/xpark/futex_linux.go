//go:build linux

package xpark

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// futex 操作码，见 futex(2)。
const (
	futexWait        = 0
	futexWake        = 1
	futexPrivateFlag = 128
)

// Futex 基于 Linux futex 系统调用的 Parker，零值可用。
// PRIVATE 标志限定在本进程地址空间内。
//
// Wait 期间占住一个系统线程：调度器无法挂起阻塞在裸系统调用里的 goroutine，
// 只能为其他 goroutine 另起线程。等待者多时会耗尽线程上限，只适合显式选用。
type Futex struct{}

// Wait 见 [Parker.Wait]。
// EAGAIN（值已变化）和 EINTR（被信号打断）都按虚假返回处理，调用方会重新检查。
func (Futex) Wait(addr *atomic.Uint32, expect uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexWait|futexPrivateFlag,
		uintptr(expect),
		0, 0, 0)
}

// Wake 见 [Parker.Wake]。
func (Futex) Wake(addr *atomic.Uint32, n int) {
	if n <= 0 {
		return
	}
	n = min(n, math.MaxInt32)
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexWake|futexPrivateFlag,
		uintptr(n),
		0, 0, 0)
}

var _ Parker = Futex{}
