package xconf

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type runConfig struct {
	Backend    string `koanf:"backend"`
	Workers    int    `koanf:"workers"`
	Iterations int    `koanf:"iterations"`
	Debug      bool   `koanf:"debug"`
}

const runYAML = `
run:
  backend: generic
  workers: 8
  iterations: 5000
  debug: true
`

const runJSON = `{"run":{"backend":"native","workers":2,"iterations":10}}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		body   string
		format Format
		want   runConfig
	}{
		{"yaml", "bench.yaml", runYAML, FormatYAML, runConfig{"generic", 8, 5000, true}},
		{"yml", "bench.yml", runYAML, FormatYAML, runConfig{"generic", 8, 5000, true}},
		{"json", "bench.json", runJSON, FormatJSON, runConfig{"native", 2, 10, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)
			cfg, err := New(path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, tt.format, cfg.Format())

			var got runConfig
			require.NoError(t, cfg.Unmarshal("run", &got))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Workers, cfg.Client().Int("run.workers"))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New("bench.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, err = New(writeFile(t, "bad.json", "{not json"))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestNew_EmptyFile(t *testing.T) {
	cfg, err := New(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Client().Keys())
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte(runJSON), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, "native", cfg.Client().String("run.backend"))

	_, err = NewFromBytes([]byte(runJSON), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	cfg, err = NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Reload(), ErrReloadUnsupported)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := NewFromBytes([]byte("run:\n  workers: 3\n"), FormatYAML,
		WithDefaults(map[string]any{"run.workers": 1, "run.backend": "generic"}),
		WithDefaults(map[string]any{"run.iterations": 100}),
		nil,
	)
	require.NoError(t, err)

	var got runConfig
	require.NoError(t, cfg.Unmarshal("run", &got))
	assert.Equal(t, runConfig{Backend: "generic", Workers: 3, Iterations: 100}, got)
}

func TestWithDelimAndTag(t *testing.T) {
	type tagged struct {
		Workers int `json:"workers"`
	}
	cfg, err := NewFromBytes([]byte(runJSON), FormatJSON, WithDelim("/"), WithTag("json"), WithDelim(""), WithTag(""))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Client().Int("run/workers"))

	var got tagged
	require.NoError(t, cfg.Unmarshal("run", &got))
	assert.Equal(t, 2, got.Workers)
}

func TestUnmarshal_Error(t *testing.T) {
	cfg, err := NewFromBytes([]byte("run:\n  workers: many\n"), FormatYAML)
	require.NoError(t, err)
	var got runConfig
	assert.ErrorIs(t, cfg.Unmarshal("run", &got), ErrUnmarshalFailed)
}

func TestReload(t *testing.T) {
	path := writeFile(t, "bench.yaml", runYAML)
	cfg, err := New(path)
	require.NoError(t, err)
	old := cfg.Client()

	require.NoError(t, os.WriteFile(path, []byte("run:\n  workers: 16\n"), 0o600))
	require.NoError(t, cfg.Reload())
	assert.Equal(t, 16, cfg.Client().Int("run.workers"))
	assert.Equal(t, 8, old.Int("run.workers"), "old snapshot stays readable")

	require.NoError(t, os.WriteFile(path, []byte("run: [unterminated"), 0o600))
	assert.ErrorIs(t, cfg.Reload(), ErrParseFailed)
	assert.Equal(t, 16, cfg.Client().Int("run.workers"), "failed reload keeps previous config")

	require.NoError(t, os.Remove(path))
	assert.ErrorIs(t, cfg.Reload(), ErrLoadFailed)
}

func TestReload_Concurrent(t *testing.T) {
	path := writeFile(t, "bench.yaml", runYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 20 {
				assert.NoError(t, cfg.Reload())
				assert.Equal(t, 8, cfg.Client().Int("run.workers"))
			}
		})
	}
	wg.Wait()
}
