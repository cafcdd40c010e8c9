// SPDX-License-Identifier: MIT

// Package logging builds the structured loggers used across socialgraph.
//
// Loggers are plain *slog.Logger values constructed with New and passed
// explicitly (social.WithLogger, the CLI command context); there is no
// package-level logger. Console output uses CompactHandler, machine output
// the standard JSON handler.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const requestIDKey contextKey = "requestID"

// requestIDAttr is the attribute key the handlers render as req=<id>.
const requestIDAttr = "requestID"

// Options selects level and format for New.
type Options struct {
	// Level is the minimum enabled level.
	Level slog.Level

	// JSON switches from CompactHandler to slog.JSONHandler.
	JSON bool
}

// New returns a logger writing to w according to opts.
func New(w io.Writer, opts Options) *slog.Logger {
	ho := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		return slog.New(contextHandler{slog.NewJSONHandler(w, ho)})
	}
	return slog.New(NewCompactHandler(w, ho))
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// NewRequest stamps ctx with a fresh random request ID and returns both.
func NewRequest(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return WithRequestID(ctx, id), id
}

// RequestID retrieves the request ID from context, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// contextHandler copies the context request ID onto each record so that
// handlers without native support (JSON) still emit it.
type contextHandler struct{ slog.Handler }

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String(requestIDAttr, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}
