// Package log provides the logging facade backed by logrus.
package log

import (
	"sync"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsDebugEnabled() bool
}

var (
	once   sync.Once
	logger Logger
)

// Init builds the global logger from cfg. Only the first call takes
// effect; the logger is process-wide state initialized once per load.
func Init(cfg *LoggerConfig) {
	once.Do(func() {
		l, err := newLogrusLogger(cfg)
		if err != nil {
			panic(err)
		}
		logger = l
	})
}

// GetLogger returns the global logger, initializing it with defaults if
// Init was never called (keeps library and test code safe).
func GetLogger() Logger {
	Init(DefaultConfig())
	return logger
}
