// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the emulator components.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)

	// WithFields returns a Logger that attaches the given fields to
	// every entry it writes.
	WithFields(fields Fields) Logger
}

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger writing info level entries and above to stderr.
func New() Logger {
	return NewWithLevel(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing entries at or above level to w.
func NewWithLevel(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return &logger{entry: logrus.NewEntry(l)}
}

// ParseLevel parses a level name such as "debug" or "info".
func ParseLevel(name string) (logrus.Level, error) {
	return logrus.ParseLevel(name)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Fatal(str string) {
	l.entry.Fatal(str)
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}
