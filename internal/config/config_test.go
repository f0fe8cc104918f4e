package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", c.Mode)
	assert.True(t, c.Production())
	assert.Equal(t, "easy", c.Difficulty)
	assert.Equal(t, uint64(0), c.Seed)
	assert.Equal(t, 1000, c.Simulate.Games)
	assert.Equal(t, 8, c.Simulate.Workers)
	assert.Equal(t, 10, c.Log.MaxSizeMB)
}

func TestLoadDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "development", c.Mode)
	assert.True(t, c.Development())

	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestDevelopment(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"False", false},
		{" false ", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("DEVELOPMENT", tt.value)
			assert.Equal(t, tt.want, Development())
		})
	}
}

func TestLoadDevelopmentFalse(t *testing.T) {
	t.Setenv("DEVELOPMENT", "false")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", c.Mode)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"mode": "development",
		"difficulty": "custom",
		"rows": 12,
		"columns": 40,
		"mines_percent": 5,
		"seed": 42,
		"log": {"level": "warn"},
		"simulate": {"games": 10, "workers": 2}
	}`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", c.Difficulty)
	assert.Equal(t, 12, c.Rows)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 10, c.Simulate.Games)
	assert.Equal(t, 2, c.Simulate.Workers)

	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, level)

	d, err := c.Preset()
	require.NoError(t, err)
	assert.Equal(t, 12, d.Rows())
	assert.Equal(t, 24, d.Columns())
	assert.Equal(t, 16, d.MinesPercent())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "difficulty: easy\nsimulate:\n  games: 10\n")
	t.Setenv("MINEFIELD_DIFFICULTY", "expert")
	t.Setenv("MINEFIELD_SIMULATE_GAMES", "25")
	t.Setenv("MINEFIELD_SEED", "9")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expert", c.Difficulty)
	assert.Equal(t, 25, c.Simulate.Games)
	assert.Equal(t, uint64(9), c.Seed)

	d, err := c.Preset()
	require.NoError(t, err)
	assert.Equal(t, "expert", d.Name())
	assert.Equal(t, 30, d.Rows())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestUnknownDifficulty(t *testing.T) {
	c := Config{Difficulty: "nightmare"}
	_, err := c.Preset()
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestFields(t *testing.T) {
	c := Config{Mode: "production", Difficulty: "easy", Seed: 3}
	f := c.Fields()
	assert.Equal(t, "production", f["mode"])
	assert.Equal(t, uint64(3), f["seed"])
}

func TestSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minefield.log")
	c := Config{Mode: "production", Log: LogConfig{Level: "info", File: path, MaxSizeMB: 1}}

	log := logrus.New()
	require.NoError(t, c.SetupLogging(log))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.WithField("k", "v").Info("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetupLoggingBadLevel(t *testing.T) {
	c := Config{Log: LogConfig{Level: "loud"}}
	assert.Error(t, c.SetupLogging(logrus.New()))
}
