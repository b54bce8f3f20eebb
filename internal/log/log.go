// Package log is the logging layer shared by the library and the command line
// tool. It wraps a single logrus logger.
package log

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

type Fields = logrus.Fields

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(WarnLevel)
	log.SetFormatter(&TextFormatter{TimestampFormat: time.RFC3339})
}

// Instance returns the underlying logger instance
func Instance() *logrus.Logger {
	return log
}

// Hook adds a logging hook to the logger instance
func Hook(hook logrus.Hook) {
	log.AddHook(hook)
}

func IsDebug() bool {
	return log.IsLevelEnabled(DebugLevel)
}

func IsTrace() bool {
	return log.IsLevelEnabled(TraceLevel)
}

// SetLevel sets the logging level of the logger instance.
func SetLevel(v string) error {
	level, err := logrus.ParseLevel(v)
	if err != nil {
		return errors.Wrapf(err, "log level %q", v)
	}
	log.SetLevel(level)
	return nil
}

// SetOutput sets the logging output of the logger instance. Anything other
// than the named streams is treated as a file path to append to.
func SetOutput(v string) error {
	switch v {
	case "none":
		log.SetOutput(io.Discard)
	case "stdout":
		log.SetOutput(os.Stdout)
	case "", "stderr":
		log.SetOutput(os.Stderr)
	default:
		file, err := os.OpenFile(v, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %q", v)
		}
		log.SetOutput(file)
	}
	return nil
}

// SetWriter points the logger at an arbitrary writer.
func SetWriter(w io.Writer) {
	log.SetOutput(w)
}

// SetFormat sets the logging format of the logger instance.
func SetFormat(v string) error {
	switch v {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case "", "text":
		log.SetFormatter(&TextFormatter{TimestampFormat: time.RFC3339})
	default:
		return errors.Errorf("unknown log format %q", v)
	}
	return nil
}

func Debugf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

func Infof(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

// WithField prepares a log entry with a single data field.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}

// WithFields prepares a log entry with multiple data fields.
func WithFields(fields Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// WithError prepares a log entry carrying an error.
func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}
