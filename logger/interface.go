package logger

import (
	"context"
)

// LoggerInterface defines the contract for logging operations
type LoggerInterface interface {
	// Context-aware logging methods
	WithContext(ctx context.Context) LoggerInterface

	// Standard logging methods
	Info(msg string, props ...map[string]interface{})
	Warn(msg string, props ...map[string]interface{})
	Error(msg string, props ...map[string]interface{})
	Debug(msg string, props ...map[string]interface{})
}

// ContextKey type for storing context values
type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// WithRequestID stores a request id for later log lines
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithContext returns a logger that tags every line with values found in ctx
func (l *Logger) WithContext(ctx context.Context) LoggerInterface {
	return &contextLogger{
		logger:  l,
		context: ctx,
	}
}

// contextLogger wraps a logger with context
type contextLogger struct {
	logger  LoggerInterface
	context context.Context
}

func (c *contextLogger) WithContext(ctx context.Context) LoggerInterface {
	return &contextLogger{
		logger:  c.logger,
		context: ctx,
	}
}

// Helper to merge context fields with provided fields
func (c *contextLogger) mergeContextFields(props []map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})
	if len(props) > 0 {
		for k, v := range props[0] {
			merged[k] = v
		}
	}

	if reqID := RequestID(c.context); reqID != "" {
		merged["request_id"] = reqID
	}

	return merged
}

func (c *contextLogger) Info(msg string, props ...map[string]interface{}) {
	c.logger.Info(msg, c.mergeContextFields(props))
}

func (c *contextLogger) Warn(msg string, props ...map[string]interface{}) {
	c.logger.Warn(msg, c.mergeContextFields(props))
}

func (c *contextLogger) Error(msg string, props ...map[string]interface{}) {
	c.logger.Error(msg, c.mergeContextFields(props))
}

func (c *contextLogger) Debug(msg string, props ...map[string]interface{}) {
	c.logger.Debug(msg, c.mergeContextFields(props))
}
