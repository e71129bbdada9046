package xmetrics

import "context"

// Status 运行结果状态
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Run 描述一次压测运行。
type Run struct {
	// Backend 互斥锁后端名称，如 "generic"。
	Backend string
	// Scenario 场景名称，如 "exclusion"。
	Scenario string
	// Workers 并发 goroutine 数。
	Workers int
}

// Result 运行结束时的结果。
type Result struct {
	// Err 非 nil 时状态为 StatusError。
	Err error
	// Acquisitions 本次运行成功加锁的次数。
	Acquisitions int64
}

// Status 返回结果对应的状态。
func (r Result) Status() Status {
	if r.Err != nil {
		return StatusError
	}
	return StatusOK
}

// Span 一次运行的观测跨度。
type Span interface {
	// End 结束观测并记录结果，多次调用只生效一次。
	End(result Result)
}

// Observer 观测接口
type Observer interface {
	Start(ctx context.Context, run Run) (context.Context, Span)
}

// NoopObserver 空实现
type NoopObserver struct{}

// Start 原样返回 ctx（nil 时为 Background）和空跨度。
func (NoopObserver) Start(ctx context.Context, _ Run) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// NoopSpan 空跨度
type NoopSpan struct{}

// End 空实现
func (NoopSpan) End(Result) {}

// Start 使用 observer 开始观测。
// 保证返回非 nil 的 context 和 Span：observer 为 nil 或返回 nil 值时回退到空实现。
func Start(ctx context.Context, observer Observer, run Run) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx, NoopSpan{}
	}
	retCtx, span := observer.Start(ctx, run)
	if retCtx == nil {
		retCtx = ctx
	}
	if span == nil {
		span = NoopSpan{}
	}
	return retCtx, span
}
