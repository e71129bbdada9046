// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作的错误被忽略）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xmutexbench.log").
//		Build()
//	defer cleanup()
//
// # 全局 Logger
//
// 适用于脚手架、小工具和库内部的诊断输出（如 xmutex 的误用报告）：
//
//   - [Default]: 获取全局 Logger（惰性初始化：stderr、Info 级别、text 格式）
//   - [SetDefault]: 替换全局 Logger（nil 会被忽略）
//   - [ResetDefault]: 重置为未初始化状态（仅用于测试）
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析；Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 可直接出现在配置结构体中。
//
// # 便捷属性
//
// [Err]、[Duration]、[Count]、[Op]、[Backend]、[Scenario]、[Goroutine]。
package xlog
