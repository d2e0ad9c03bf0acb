package mocks

import (
	"context"
	"sync"

	"lifecare/infras/otel"
)

type otelImpl struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.spans = append(o.spans, spanName)
	o.mu.Unlock()

	return ctx, &scopeImpl{parent: o}
}

func (o *otelImpl) record(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.errors = append(o.errors, err)
}

// NewOtel returns a tracer that creates no real spans.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder is a no-op tracer that remembers span names and traced errors.
type Recorder struct {
	otelImpl
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Spans returns the span names opened so far, in order.
func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

// Errors returns the errors traced so far.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}
