// Package observability 聚合可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog，支持动态级别与堆栈报告
//   - xrotate: 日志文件轮转，基于 lumberjack
//   - xmetrics: 压测运行的指标与追踪，基于 OpenTelemetry
package observability
