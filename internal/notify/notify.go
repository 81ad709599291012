package notify

// Package notify carries transient user-facing feedback (the SPA's toasts)
// from services to whatever surface renders them. Sinks are purely output:
// they hold no state the auth flow depends on.

import (
	"context"
	"log/slog"
)

// Kind classifies a notice for rendering.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is a single transient message for the user.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Sink describes a destination capable of surfacing notices.
type Sink interface {
	Notify(ctx context.Context, n Notice)
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, n Notice)

// Notify implements the Sink interface.
func (f SinkFunc) Notify(ctx context.Context, n Notice) {
	if f == nil {
		return
	}
	f(ctx, n)
}

// LogSink writes notices to a structured logger. It is the default sink when
// no UI surface is attached.
type LogSink struct {
	Logger *slog.Logger
}

// Notify implements the Sink interface.
func (s LogSink) Notify(ctx context.Context, n Notice) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notice", "kind", string(n.Kind), "message", n.Message)
}

// Success is a convenience helper for emitting a success notice.
func Success(ctx context.Context, sink Sink, message string) {
	emit(ctx, sink, Notice{Kind: KindSuccess, Message: message})
}

// Error is a convenience helper for emitting an error notice.
func Error(ctx context.Context, sink Sink, message string) {
	emit(ctx, sink, Notice{Kind: KindError, Message: message})
}

// Info is a convenience helper for emitting an info notice.
func Info(ctx context.Context, sink Sink, message string) {
	emit(ctx, sink, Notice{Kind: KindInfo, Message: message})
}

func emit(ctx context.Context, sink Sink, n Notice) {
	if sink == nil {
		return
	}
	sink.Notify(ctx, n)
}
