package stress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Backends(), cfg.backends())

	scenarios, err := cfg.scenarios()
	require.NoError(t, err)
	assert.Equal(t, []string{ScenarioExclusion, ScenarioWakeup}, scenarios)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown scenario", func(c *Config) { c.Scenario = "fairness" }, ErrUnknownScenario},
		{"unknown backend", func(c *Config) { c.Backends = []string{"generic", "spin"} }, ErrUnknownBackend},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidConfig},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, ErrInvalidConfig},
		{"zero waiters", func(c *Config) { c.Waiters = 0 }, ErrInvalidConfig},
		{"zero cycles", func(c *Config) { c.Cycles = 0 }, ErrInvalidConfig},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestConfig_SingleScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scenario = ScenarioWakeup
	cfg.Backends = []string{"native"}
	scenarios, err := cfg.scenarios()
	require.NoError(t, err)
	assert.Equal(t, []string{ScenarioWakeup}, scenarios)
	assert.Equal(t, []string{"native"}, cfg.backends())
}
