package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance - use this directly
var Log *logrus.Logger

// Config holds configuration for logger setup
type Config struct {
	Level  logrus.Level
	Format string // "text" or "json"
	Output io.Writer
}

// ParseLevel converts a LOG_LEVEL value into a logrus level, defaulting to info.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Init initializes the global logger with the given configuration
func Init(config *Config) {
	Log = logrus.New()
	Log.SetLevel(config.Level)

	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)

	if config.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
}

// init ensures the logger is always available with default settings
func init() {
	Init(&Config{
		Level:  logrus.InfoLevel,
		Format: "text",
	})
}
