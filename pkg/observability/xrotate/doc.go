// Package xrotate 提供日志文件轮转能力。
//
// 基于 gopkg.in/natefinch/lumberjack.v2，按文件大小轮转，
// 按数量和天数清理备份。返回的 [Rotator] 实现 io.WriteCloser，
// 可直接作为 xlog 的输出目标（见 xlog.Builder.SetRotation）。
//
// 配置在 [NewLumberjack] 中校验，非法值返回对应的哨兵错误，
// 例如 [ErrInvalidMaxSize]、[ErrNoCleanupPolicy]。
package xrotate
