package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "02-01-06:15:04:05"

type Logger struct {
	*logrus.Logger
	mu    sync.Mutex
	debug bool // Flag to enable/disable debug logging
}

var (
	instance *Logger
	once     sync.Once
)

// GetLogger returns a singleton logger instance writing to stderr
func GetLogger() *Logger {
	once.Do(func() {
		instance = New(os.Stderr)
	})
	return instance
}

// New creates a logger writing text lines to w
func New(w io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})

	return &Logger{
		Logger: l,
		debug:  false, // Default to false, no debug logs
	}
}

func fields(props []map[string]interface{}) logrus.Fields {
	if len(props) == 0 || props[0] == nil {
		return logrus.Fields{}
	}
	return logrus.Fields(props[0])
}

func (l *Logger) Info(msg string, props ...map[string]interface{}) {
	l.WithFields(fields(props)).Info(msg)
}

func (l *Logger) Warn(msg string, props ...map[string]interface{}) {
	l.WithFields(fields(props)).Warn(msg)
}

func (l *Logger) Error(msg string, props ...map[string]interface{}) {
	l.WithFields(fields(props)).Error(msg)
}

func (l *Logger) Debug(msg string, props ...map[string]interface{}) {
	l.WithFields(fields(props)).Debug(msg)
}

// EnableDebug enables debug logging
func (l *Logger) EnableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = true
	l.SetLevel(logrus.DebugLevel)
}

// DisableDebug disables debug logging
func (l *Logger) DisableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = false
	l.SetLevel(logrus.InfoLevel)
}
