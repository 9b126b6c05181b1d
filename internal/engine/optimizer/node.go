package optimizer

import (
	"context"

	"github.com/grindlemire/graft"
)

// RegistryNodeID is the unique identifier for the session registry Graft node.
const RegistryNodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})
}
