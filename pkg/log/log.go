// Package log provides the logging interface used throughout the
// emulator, along with a logrus backed implementation.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing to stderr at the info level.
func New() Logger {
	return NewWithWriter(os.Stderr, logrus.InfoLevel)
}

// NewDebug returns a Logger writing to stderr at the debug level, so
// that unmapped bus accesses and instruction traces are visible.
func NewDebug() Logger {
	return NewWithWriter(os.Stderr, logrus.DebugLevel)
}

// NewWithWriter returns a Logger writing to w at the given level.
func NewWithWriter(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		ForceColors:      false,
		DisableTimestamp: true,
		DisableQuote:     true,
	}
	return &logger{Logger: l}
}
