package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/omeyang/xsync/internal/stress"
	"github.com/omeyang/xsync/pkg/sync/xmutex"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"xmutexbench"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestBackendsCommand(t *testing.T) {
	code, out, _ := runCLI(t, "backends")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "mutex: "+xmutex.BackendName)
	for _, name := range stress.Backends() {
		assert.Contains(t, out, name+"\n")
	}
}

func TestRunCommand_Pass(t *testing.T) {
	code, out, stderr := runCLI(t, "run",
		"-b", "generic", "-b", "debug-native",
		"--workers", "2", "--iterations", "50", "--waiters", "2",
	)
	require.Equal(t, exitOK, code, stderr)
	assert.Regexp(t, `PASS\s+generic\s+exclusion`, out)
	assert.Contains(t, out, "4 passed, 0 failed")
}

func TestRunCommand_Metrics(t *testing.T) {
	code, out, stderr := runCLI(t, "run", "-b", "parklot", "-s", "exclusion",
		"--workers", "2", "--iterations", "10", "--metrics")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "xsync.stress.acquisitions{backend=parklot,scenario=exclusion} 20")
	assert.Contains(t, out, "xsync.stress.runs{backend=parklot,scenario=exclusion,status=ok} 1")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stress:
  scenario: wakeup
  backends: [native]
  waiters: 3
  timeout: 5s
`), 0o600))

	code, out, stderr := runCLI(t, "run", "--config", path)
	require.Equal(t, exitOK, code, stderr)
	assert.Regexp(t, `PASS\s+native\s+wakeup`, out)
	assert.NotContains(t, out, "exclusion")
	assert.Contains(t, out, "1 passed, 0 failed")

	// 命令行选项覆盖配置文件。
	code, out, stderr = runCLI(t, "run", "--config", path, "-b", "rwexclusive")
	require.Equal(t, exitOK, code, stderr)
	assert.Regexp(t, `PASS\s+rwexclusive\s+wakeup`, out)
	assert.NotRegexp(t, `\snative\s+wakeup`, out)
}

func TestRunCommand_LogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bench.log")
	code, _, stderr := runCLI(t, "--log-level", "info", "--log-format", "json", "--log-file", file,
		"run", "-b", "native", "-s", "exclusion", "--iterations", "10")
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"stress scenario passed"`)
	assert.Contains(t, string(data), `"backend":"native"`)
}

func TestRunCommand_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown backend", []string{"run", "-b", "spin"}},
		{"unknown scenario", []string{"run", "-s", "fairness"}},
		{"zero workers", []string{"run", "--workers", "0"}},
		{"missing config", []string{"run", "--config", "/nonexistent/bench.yaml"}},
		{"unsupported config", []string{"run", "--config", "bench.toml"}},
		{"bad log level", []string{"--log-level", "loud", "run", "-b", "native"}},
		{"unknown flag", []string{"run", "--turbo"}},
		{"non-numeric flag", []string{"run", "--workers", "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, exitUsage, code, stderr)
		})
	}
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, exitOK, exitCode(nil, &stderr))
	assert.Equal(t, exitFailure, exitCode(&exitError{code: exitFailure}, &stderr))
	assert.Equal(t, exitUsage, exitCode(&usageError{err: stress.ErrInvalidConfig}, &stderr))
	assert.Equal(t, exitFailure, exitCode(errors.New("boom"), &stderr))
	assert.Contains(t, stderr.String(), "错误: boom")
}

func TestRunCommand_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"xmutexbench", "run", "-b", "native"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), context.Canceled.Error())
}
