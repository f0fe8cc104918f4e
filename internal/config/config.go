package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minefield/internal/difficulty"
)

const EnvPrefix = "MINEFIELD"

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type SimulateConfig struct {
	Games   int `mapstructure:"games"`
	Workers int `mapstructure:"workers"`
}

type Config struct {
	Mode         string         `mapstructure:"mode"`
	Difficulty   string         `mapstructure:"difficulty"`
	Rows         int            `mapstructure:"rows"`
	Columns      int            `mapstructure:"columns"`
	MinesPercent int            `mapstructure:"mines_percent"`
	Seed         uint64         `mapstructure:"seed"`
	Log          LogConfig      `mapstructure:"log"`
	Simulate     SimulateConfig `mapstructure:"simulate"`
}

func setDefaults(v *viper.Viper) {
	mode := "production"
	if Development() {
		mode = "development"
	}
	v.SetDefault("mode", mode)
	v.SetDefault("difficulty", "easy")
	v.SetDefault("rows", 8)
	v.SetDefault("columns", 8)
	v.SetDefault("mines_percent", 16)
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("simulate.games", 1000)
	v.SetDefault("simulate.workers", 8)
}

// Load reads the config file at path (if any) and applies MINEFIELD_*
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &c, nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Preset resolves the configured difficulty. Custom sizes go through the
// preset clamping.
func (c Config) Preset() (*difficulty.Difficulty, error) {
	d, err := difficulty.Parse(c.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, c.Difficulty)
	}
	if d.Editable() {
		d = difficulty.Custom(c.Rows, c.Columns, c.MinesPercent)
	}
	return d, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"difficulty":       c.Difficulty,
		"rows":             c.Rows,
		"columns":          c.Columns,
		"mines_percent":    c.MinesPercent,
		"seed":             c.Seed,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
		"simulate_games":   c.Simulate.Games,
		"simulate_workers": c.Simulate.Workers,
	}
}
