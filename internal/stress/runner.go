package stress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omeyang/xsync/pkg/observability/xlog"
	"github.com/omeyang/xsync/pkg/observability/xmetrics"
)

// Result 单个（后端, 场景）组合的运行结果。
type Result struct {
	Backend      string
	Scenario     string
	Acquisitions int64
	Duration     time.Duration
	Err          error
}

// OK 报告该组合是否通过。
func (r Result) OK() bool { return r.Err == nil }

// Report 一次 Run 的全部结果，顺序与运行顺序一致。
type Report struct {
	Results []Result
}

// Failed 返回未通过的结果。
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK 报告所有组合是否都通过。
func (r Report) OK() bool { return len(r.Failed()) == 0 }

// Option Runner 配置选项
type Option func(*Runner)

// WithLogger 设置日志输出，nil 被忽略。
func WithLogger(l xlog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver 设置观测实现，nil 被忽略。
func WithObserver(o xmetrics.Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

// Runner 按配置依次运行场景。
type Runner struct {
	logger   xlog.Logger
	observer xmetrics.Observer
}

// NewRunner 创建 Runner，默认使用 xlog.Default() 和 xmetrics.NoopObserver。
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:   xlog.Default(),
		observer: xmetrics.NoopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run 对 cfg 中的每个后端依次运行每个场景。
// 配置非法时返回错误且不运行任何场景；ctx 取消时返回已完成部分的报告和 ctx 的错误。
// 场景失败记录在 Report 中，不作为返回错误。
func (r *Runner) Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	scenarios, err := cfg.scenarios()
	if err != nil {
		return Report{}, err
	}

	var report Report
	for _, name := range cfg.backends() {
		factory, err := Lookup(name)
		if err != nil {
			return report, err
		}
		for _, scenario := range scenarios {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			report.Results = append(report.Results, r.RunOne(ctx, name, factory, scenario, cfg))
		}
	}
	return report, nil
}

// RunOne 在 factory 创建的新实例上运行一个场景。cfg 应已通过 Validate；
// 未知场景（包括 ScenarioAll）的结果携带 ErrUnknownScenario。
func (r *Runner) RunOne(ctx context.Context, backend string, factory Factory, scenario string, cfg Config) Result {
	res := Result{Backend: backend, Scenario: scenario}
	run, ok := scenarioFuncs[scenario]
	if !ok {
		res.Err = fmt.Errorf("%w: %q", ErrUnknownScenario, scenario)
		return res
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx, span := xmetrics.Start(ctx, r.observer, xmetrics.Run{
		Backend:  backend,
		Scenario: scenario,
		Workers:  workersOf(scenario, cfg),
	})

	start := time.Now()
	res.Acquisitions, res.Err = run(ctx, factory(), cfg)
	res.Duration = time.Since(start)
	span.End(xmetrics.Result{Err: res.Err, Acquisitions: res.Acquisitions})

	attrs := []slog.Attr{
		xlog.Backend(backend),
		xlog.Scenario(scenario),
		xlog.Count(res.Acquisitions),
		xlog.Duration(res.Duration),
	}
	if res.Err != nil {
		r.logger.Error(ctx, "stress scenario failed", append(attrs, xlog.Err(res.Err))...)
	} else {
		r.logger.Info(ctx, "stress scenario passed", attrs...)
	}
	return res
}

func workersOf(scenario string, cfg Config) int {
	if scenario == ScenarioWakeup {
		return cfg.Waiters
	}
	return cfg.Workers
}
