// Package xgoid 提供当前 goroutine 的标识。
//
// Go 运行时不公开 goroutine ID，本包委托 github.com/petermattis/goid 读取
// （受支持的平台直接读运行时 g 结构，其余平台回退到解析 runtime.Stack）。
// 仅用于诊断场景（如 xmutex 的调试包装器记录锁持有者），不应作为业务逻辑的依据。
//
// # 约定
//
//   - [Current] 返回值对存活的 goroutine 唯一，且在同一 goroutine 内稳定
//   - [None]（0）是保留的哨兵值，表示"无 goroutine"
package xgoid
