// xmutexbench 对 xmutex 的各个后端运行并发压测场景。
//
// 用法:
//
//	xmutexbench [全局选项] <命令> [命令选项]
//
// 全局选项:
//
//	--log-level    日志级别 debug/info/warn/error (默认: warn)
//	--log-format   日志格式 text/json (默认: text)
//	--log-file     日志写入文件并按大小轮转，为空时写 stderr
//
// 命令:
//
//	run            运行压测场景
//	backends       列出可用后端及编译期选定的 Mutex 后端
//
// 配置文件（run --config）使用 YAML 或 JSON，键位于 stress 之下，
// 命令行选项覆盖配置文件:
//
//	stress:
//	  scenario: all
//	  backends: [generic, native]
//	  workers: 8
//	  iterations: 10000
//	  waiters: 8
//	  cycles: 10000
//	  timeout: 30s
//
// 退出码:
//
//	0: 所有场景通过
//	1: 至少一个场景失败，或运行出错
//	2: 参数或配置错误
//
// 示例:
//
//	xmutexbench backends
//	xmutexbench run -b generic -b futex --workers 16
//	xmutexbench run --config bench.yaml --metrics
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

// 退出码
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// exitError 命令已完成输出，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 参数或配置错误，映射为退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xmutexbench",
		Usage:     "xmutex 后端并发压测工具",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Usage: "日志级别 (debug/info/warn/error)", Value: "warn"},
			&cli.StringFlag{Name: "log-format", Usage: "日志格式 (text/json)", Value: "text"},
			&cli.StringFlag{Name: "log-file", Usage: "日志文件路径，按大小轮转"},
		},
		Commands: []*cli.Command{
			createRunCommand(),
			createBackendsCommand(),
		},
		// 退出码统一由 run 映射，不允许框架直接 os.Exit。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := createApp(stdout, stderr).Run(ctx, args)
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return exitUsage
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return exitUsage
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return exitFailure
}

// isCLIUsageError 识别 urfave/cli 的参数解析错误（未知 flag、非法取值等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range []string{
		"flag provided but not defined",
		"invalid value",
		"No help topic for",
		"Required flag",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// setupSignalHandler 第一次信号取消运行，第二次强制退出（130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
