package progrock

import (
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/sharetree/internal/core/ports"
)

// Summary is a progrock.Writer that forwards every update to the next writer and
// reports each completed vertex to a logger.
type Summary struct {
	next   progrock.Writer
	logger ports.Logger

	mu       sync.Mutex
	reported map[string]time.Time
}

var _ progrock.Writer = (*Summary)(nil)

// NewSummary creates a Summary in front of next.
func NewSummary(next progrock.Writer, logger ports.Logger) *Summary {
	return &Summary{
		next:     next,
		logger:   logger,
		reported: make(map[string]time.Time),
	}
}

// WriteStatus forwards update and logs the vertexes it completes.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	if err := s.next.WriteStatus(update); err != nil {
		return err
	}
	if s.logger == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if v.GetCompleted() == nil {
			continue
		}
		completed := v.GetCompleted().AsTime()
		// Vertex ids repeat across passes; each completion is reported once.
		if last, ok := s.reported[v.GetId()]; ok && last.Equal(completed) {
			continue
		}
		s.reported[v.GetId()] = completed

		duration := completed.Sub(v.GetStarted().AsTime()).Round(time.Microsecond)
		if msg := v.GetError(); msg != "" {
			s.logger.Warn(fmt.Sprintf("%s failed after %s: %s", v.GetName(), duration, msg))
			continue
		}
		s.logger.Info(fmt.Sprintf("%s finished in %s", v.GetName(), duration))
	}
	return nil
}

// Close closes the next writer.
func (s *Summary) Close() error {
	return s.next.Close()
}
