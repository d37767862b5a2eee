// ABOUTME: Logger implementation backed by logrus with optional rotating file output
// ABOUTME: Provides structured logging with level support in text or JSON format

package logrus

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a LogrusLogger
type Options struct {
	// Level is a logrus level name such as "debug" or "info"
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, receives a rotated copy of everything written to Output
	File string

	// Output defaults to os.Stdout
	Output io.Writer
}

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	logger *log.Logger
	file   *lumberjack.Logger
}

// NewLogrusLogger creates a logger from options
func NewLogrusLogger(opts Options) (*LogrusLogger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetLevel(level)

	if opts.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	l := &LogrusLogger{logger: logger}
	if opts.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, l.file)
	}
	logger.SetOutput(out)

	return l, nil
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}

// Close releases the rotating log file, if any
func (l *LogrusLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
