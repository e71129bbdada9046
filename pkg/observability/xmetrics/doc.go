// Package xmetrics 提供压测运行的可观测性接口（metrics + tracing）。
//
// 调用方只依赖 [Observer] / [Span] 接口；默认实现基于 OpenTelemetry。
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.Run{Backend: "generic", Scenario: "exclusion"})
//	defer func() { span.End(xmetrics.Result{Err: err, Acquisitions: n}) }()
//
// # 指标
//
//   - xsync.stress.runs：运行次数，属性 backend / scenario / status
//   - xsync.stress.acquisitions：成功加锁次数，属性 backend / scenario
//   - xsync.stress.duration：运行耗时（秒），属性 backend / scenario / status
package xmetrics
