package log

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

// ContextWithRunID stores the provided run ID in the context.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run ID from context if present.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns a component logger enriched with the context's run ID.
func WithContext(ctx context.Context, component string) zerolog.Logger {
	l := WithComponent(component)
	if id := RunIDFromContext(ctx); id != "" {
		l = l.With().Str(FieldRunID, id).Logger()
	}
	return l
}
