package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	emailKey  contextKey = "email"
	tenantKey contextKey = "tenant"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithPrincipal stores the caller identity on ctx so that WithContext can tag log lines.
func WithPrincipal(ctx context.Context, email, tenantID string) context.Context {
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, tenantKey, tenantID)
}

// WithContext creates a logger with user and tenant information
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if email, ok := ctx.Value(emailKey).(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}
	if tenant, ok := ctx.Value(tenantKey).(string); ok && tenant != "" {
		logger.Entry = logger.Entry.WithField("tenant", tenant)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Setup configures the process-wide logrus output for the given level.
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
