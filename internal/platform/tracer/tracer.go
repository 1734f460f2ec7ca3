// Package tracer defines a small tracing port so domain services do not
// depend on OpenTelemetry APIs directly.
package tracer

import "context"

// Attribute is a key/value pair attached to a span.
type Attribute struct {
	Key   string
	Value string
}

// Span represents an in-flight trace span.
type Span interface {
	// End completes the span, recording the error if non-nil.
	End(err error)
}

// Tracer starts spans around service operations.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Noop is a Tracer that does nothing. Used as the default when no tracing
// backend is configured.
type Noop struct{}

func (Noop) Start(ctx context.Context, _ string, _ ...Attribute) (context.Context, Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}
