package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("test", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minions.yaml")
	content := []byte(`
simulation:
  seeing_distance: 8
  stopping_distance: 2
spawn:
  extra_minions: 3
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("MINIONS_SIMULATION_SEEING_DISTANCE", "9")
	t.Setenv("MINIONS_SPAWN_SEED", "42")

	cfg, err := Load("test", []string{"--config", path, "--simulation.seeing_distance=10"})
	require.NoError(t, err)

	assert.Equal(t, float32(10), cfg.Simulation.SeeingDistance, "flag wins over env and file")
	assert.Equal(t, int64(42), cfg.Spawn.Seed, "env wins over default")
	assert.Equal(t, float32(2), cfg.Simulation.StoppingDistance, "file wins over default")
	assert.Equal(t, 3, cfg.Spawn.ExtraMinions)
	assert.Equal(t, float32(0.1), cfg.Simulation.SwitchingDelta)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load("test", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative stopping", func(c *Config) { c.Simulation.StoppingDistance = -1 }},
		{"seeing not above stopping", func(c *Config) { c.Simulation.SeeingDistance = 1 }},
		{"negative delta", func(c *Config) { c.Simulation.SwitchingDelta = -0.1 }},
		{"negative speed", func(c *Config) { c.Simulation.MovingSpeed = -1 }},
		{"zero max dt", func(c *Config) { c.Simulation.MaxDeltaTime = 0 }},
		{"camera range", func(c *Config) { c.Camera.YMin = 6 }},
		{"negative extra minions", func(c *Config) { c.Spawn.ExtraMinions = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("MINIONS_SIMULATION_STOPPING_DISTANCE", "7")
	_, err := Load("test", nil)
	assert.True(t, eris.Is(err, ErrInvalidConfig))
}
