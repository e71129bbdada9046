package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xsync/internal/stress"
	"github.com/omeyang/xsync/pkg/config/xconf"
	"github.com/omeyang/xsync/pkg/observability/xlog"
	"github.com/omeyang/xsync/pkg/observability/xmetrics"
	"github.com/omeyang/xsync/pkg/observability/xrotate"
	"github.com/omeyang/xsync/pkg/sync/xmutex"
)

// configKey 是配置文件中压测参数所在的路径。
const configKey = "stress"

var labelEncoder = attribute.DefaultEncoder()

func createRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "运行压测场景",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "配置文件 (.yaml/.yml/.json)"},
			&cli.StringFlag{Name: "scenario", Aliases: []string{"s"}, Usage: "场景 (exclusion/wakeup/all)", Value: stress.ScenarioAll},
			&cli.StringSliceFlag{Name: "backend", Aliases: []string{"b"}, Usage: "后端名称，可重复；默认全部"},
			&cli.IntFlag{Name: "workers", Usage: "exclusion 并发数", Value: stress.DefaultWorkers},
			&cli.IntFlag{Name: "iterations", Usage: "exclusion 每个 worker 的加锁次数", Value: stress.DefaultIterations},
			&cli.IntFlag{Name: "waiters", Usage: "wakeup 等待者数量", Value: stress.DefaultWaiters},
			&cli.IntFlag{Name: "cycles", Usage: "wakeup 最大轮次", Value: stress.DefaultCycles},
			&cli.DurationFlag{Name: "timeout", Usage: "单个场景超时", Value: stress.DefaultTimeout},
			&cli.BoolFlag{Name: "metrics", Usage: "运行结束后输出 OpenTelemetry 指标汇总"},
		},
		Action: cmdRun,
	}
}

func createBackendsCommand() *cli.Command {
	return &cli.Command{
		Name:  "backends",
		Usage: "列出可用后端",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdBackends(cmd.Root().Writer)
		},
	}
}

func cmdBackends(w io.Writer) error {
	fmt.Fprintf(w, "mutex: %s (debug=%t)\n", xmutex.BackendName, xmutex.DebugEnabled)
	for _, name := range stress.Backends() {
		fmt.Fprintln(w, name)
	}
	return nil
}

func cmdRun(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return &usageError{err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}

	logger, cleanup, err := buildLogger(cmd)
	if err != nil {
		return &usageError{err: err}
	}
	defer func() { _ = cleanup() }()

	opts := []stress.Option{stress.WithLogger(logger)}
	var reader *sdkmetric.ManualReader
	if cmd.Bool("metrics") {
		reader = sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(context.WithoutCancel(ctx)) }()
		obs, err := xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(mp))
		if err != nil {
			return err
		}
		opts = append(opts, stress.WithObserver(obs))
	}

	w := cmd.Root().Writer
	report, err := stress.NewRunner(opts...).Run(ctx, cfg)
	printReport(w, report)
	if err != nil {
		return err
	}
	if reader != nil {
		if err := printMetrics(ctx, w, reader); err != nil {
			return err
		}
	}
	if !report.OK() {
		return &exitError{code: exitFailure}
	}
	return nil
}

// loadConfig 合并默认值、配置文件和显式设置的命令行选项，后者优先。
func loadConfig(cmd *cli.Command) (stress.Config, error) {
	cfg := stress.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		file, err := xconf.New(path)
		if err != nil {
			return cfg, err
		}
		if err := file.Unmarshal(configKey, &cfg); err != nil {
			return cfg, err
		}
	}
	if cmd.IsSet("scenario") {
		cfg.Scenario = cmd.String("scenario")
	}
	if cmd.IsSet("backend") {
		cfg.Backends = cmd.StringSlice("backend")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("iterations") {
		cfg.Iterations = cmd.Int("iterations")
	}
	if cmd.IsSet("waiters") {
		cfg.Waiters = cmd.Int("waiters")
	}
	if cmd.IsSet("cycles") {
		cfg.Cycles = cmd.Int("cycles")
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	return cfg, nil
}

func buildLogger(cmd *cli.Command) (xlog.Logger, func() error, error) {
	b := xlog.New().
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format"))
	if file := cmd.String("log-file"); file != "" {
		b = b.SetRotation(file, xrotate.WithMaxSize(50), xrotate.WithMaxBackups(3))
	} else {
		b = b.SetOutput(cmd.Root().ErrWriter)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger, cleanup, nil
}

func printReport(w io.Writer, report stress.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESULT\tBACKEND\tSCENARIO\tACQUISITIONS\tDURATION\tERROR")
	for _, res := range report.Results {
		status, msg := "PASS", ""
		if !res.OK() {
			status, msg = "FAIL", res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			status, res.Backend, res.Scenario, res.Acquisitions, res.Duration.Round(time.Microsecond), msg)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d passed, %d failed\n", len(report.Results)-len(report.Failed()), len(report.Failed()))
}

func printMetrics(ctx context.Context, w io.Writer, reader *sdkmetric.ManualReader) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.WithoutCancel(ctx), &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}
	var lines []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				lines = append(lines, fmt.Sprintf("%s{%s} %d", m.Name, dp.Attributes.Encoded(labelEncoder), dp.Value))
			}
		}
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
