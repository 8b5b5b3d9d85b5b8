package tool

import (
	"context"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt configures a registered capability
type Opt func(*opts)

type opts struct {
	validate bool
	tracer   trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) opts {
	var result opts
	for _, opt := range o {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithValidation validates call arguments against the parameter schema
// before they are decoded
func WithValidation() Opt {
	return func(o *opts) {
		o.validate = true
	}
}

// WithTracer records a span for every call of the capability
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) {
		o.tracer = tracer
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (o opts) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	if o.tracer == nil {
		return ctx, func(error) {}
	}
	return otel.StartSpan(o.tracer, ctx, name, attrs...)
}
