package logger

import "context"

type contextKey string

const (
	loggerKey    contextKey = "vmadmin.logger"
	commandIDKey contextKey = "vmadmin.command_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns a discarding logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Discard()
}

// WithCommandID tags the context with the ID of the command being dispatched.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey, id)
}

// CommandIDFromContext extracts the command ID from context.
func CommandIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(commandIDKey).(string); ok {
		return id
	}
	return ""
}

// L is FromContext enriched with the command ID, if one is present.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if id := CommandIDFromContext(ctx); id != "" {
		l = l.With("command_id", id)
	}
	return l.WithContext(ctx)
}
