package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey is the context key the trace id travels under.
const TraceIDKey = "trace_id"

// ContextHandler wraps a handler and lifts the trace_id out of the ctx.
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
