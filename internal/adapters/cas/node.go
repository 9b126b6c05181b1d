package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
)

// NodeID is the unique identifier for the usage report store Graft node.
const NodeID graft.ID = "adapter.usage_report_store"

func init() {
	graft.Register(graft.Node[ports.UsageReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UsageReportStore, error) {
			return NewStore(domain.DefaultStorePath())
		},
	})
}
