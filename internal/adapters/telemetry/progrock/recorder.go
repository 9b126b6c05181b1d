// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/sharetree/internal/core/ports"
)

// planVertexName names the vertex that lists the share keys of a pass.
const planVertexName = "Plan"

// Recorder implements ports.Tracer by recording every span as a progrock vertex.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

var _ ports.Tracer = (*Recorder)(nil)

// New creates a new Recorder that records onto a tape and reports finished vertices
// to logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewSummary(progrock.NewTape(), logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// Start starts recording a new vertex.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	v := r.rec.Vertex(digest.FromString(name), name)
	span := newSpan(v)
	for key, value := range cfg.Attributes {
		span.SetAttribute(key, value)
	}
	return ctx, span
}

// EmitPlan records the share keys of a pass as a completed vertex.
func (r *Recorder) EmitPlan(_ context.Context, shareKeys []string) {
	v := r.rec.Vertex(digest.FromString(planVertexName), planVertexName)
	_, _ = fmt.Fprintf(v.Stdout(), "share keys: %s\n", strings.Join(shareKeys, ", "))
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
