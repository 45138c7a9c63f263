// Package xlog wires up the structured logger shared by the storage
// and optimizer packages: logrus for leveled, field-based logging,
// rotated through lumberjack the way a long-running server process
// would run it.
package xlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how verbosely the shared logger writes.
type Config struct {
	Level      logrus.Level
	Filename   string // empty means stderr only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultConfig logs at Info level to stderr with no rotation target.
func DefaultConfig() Config {
	return Config{Level: logrus.InfoLevel}
}

// New builds a logrus.Logger from cfg. When cfg.Filename is set, output
// is duplicated to both stderr and a lumberjack-rotated file.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(cfg.Level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var out io.Writer = os.Stderr
	if cfg.Filename != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}
	l.SetOutput(out)
	return l
}
