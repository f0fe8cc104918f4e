package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func (c Config) LogLevel() (logrus.Level, error) {
	if c.Log.Level != "" {
		return logrus.ParseLevel(c.Log.Level)
	}
	if c.Development() {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}

// SetupLogging applies level, console formatter and the optional rotating
// file sink to every given logger.
func (c Config) SetupLogging(loggers ...*logrus.Logger) error {
	level, err := c.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	var hook logrus.Hook
	if c.Log.File != "" {
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		if hook != nil {
			log.AddHook(hook)
		}
	}
	return nil
}
