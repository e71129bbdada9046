package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key，保持各组件输出字段一致。
const (
	KeyError     = "error"
	KeyStack     = "stack"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyOp        = "op"
	KeyBackend   = "backend"
	KeyScenario  = "scenario"
	KeyGoroutine = "goroutine"
)

// Err 创建错误属性。err 为 nil 时返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5ms"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Op 创建操作名属性（如 "lock"、"unlock"）
func Op(name string) slog.Attr {
	return slog.String(KeyOp, name)
}

// Backend 创建互斥锁后端名称属性
func Backend(name string) slog.Attr {
	return slog.String(KeyBackend, name)
}

// Scenario 创建压测场景名称属性
func Scenario(name string) slog.Attr {
	return slog.String(KeyScenario, name)
}

// Goroutine 创建 goroutine ID 属性
func Goroutine(id int64) slog.Attr {
	return slog.Int64(KeyGoroutine, id)
}
