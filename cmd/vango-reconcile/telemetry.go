package main

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation name for command spans.
const tracerName = "github.com/vango-dev/reconcile/cmd/vango-reconcile"

// traced runs fn inside a span named after the command. Spans are only
// exported when the process installs a tracer provider.
func traced(ctx context.Context, name string, fn func(ctx context.Context, span trace.Span) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "vango-reconcile "+name,
		trace.WithAttributes(attribute.String("command", name)))
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
