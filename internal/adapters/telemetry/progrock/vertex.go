package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/sharetree/internal/core/domain"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu     sync.Mutex
	err    error
	status domain.StageStatus
}

func newSpan(v *progrock.VertexRecorder) *Span {
	return &Span{
		vertex: v,
		status: domain.StageStatusRunning,
	}
}

// Write writes p to the vertex's standard output stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// Stderr returns a writer to capture error output stream.
func (s *Span) Stderr() io.Writer {
	return s.vertex.Stderr()
}

// Log records a leveled log message associated with this vertex.
func (s *Span) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// SetAttribute logs the attribute on the vertex at debug level.
func (s *Span) SetAttribute(key string, value any) {
	s.Log(domain.LogLevelDebug, fmt.Sprintf("%s=%v", key, value))
}

// RecordError remembers err; the vertex fails when it ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// End marks the vertex as finished. Calls after the first are ignored.
func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsTerminal() {
		return
	}
	s.vertex.Done(s.err)
	if s.err != nil {
		s.status = domain.StageStatusFailed
		return
	}
	s.status = domain.StageStatusCompleted
}

// Status returns the lifecycle state of the vertex.
func (s *Span) Status() domain.StageStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
