// Package tracer is a small tracing seam in front of OpenTelemetry.
//
// Services depend on Tracer and Span only. cmd/server wires the OTel
// adapter; tests and the CLI use the no-op tracer.
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a span and returns a context carrying it.
	//
	// Example:
	//   ctx, span := t.Start(ctx, tracer.SpanLeadGenerate,
	//       tracer.Int(tracer.AttrLeadCount, n),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanLeadGenerate = "lead.generate"
)

// Attribute keys. Hints are free text, so only their presence is traced.
const (
	AttrLeadRequested = "lead.requested"
	AttrLeadCount     = "lead.count"
	AttrIndustrySet   = "lead.industry_set"
	AttrRoleSet       = "lead.role_set"
	AttrLocationSet   = "lead.location_set"
	AttrTopScore      = "lead.top_score"
	AttrGenerationMs  = "lead.generation_ms"
)

// Event names.
const (
	EventCountClamped = "lead.count_clamped"
)
