package xgoid

import "github.com/petermattis/goid"

// None 表示"无 goroutine"的哨兵值。运行时分配的 goroutine ID 从 1 开始。
const None int64 = 0

// Current 返回调用方 goroutine 的 ID。
func Current() int64 {
	return goid.Get()
}
