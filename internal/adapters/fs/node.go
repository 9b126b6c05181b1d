package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the input hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// OpenerNodeID is the unique identifier for the build output opener Graft node.
	OpenerNodeID graft.ID = "adapter.fs.opener"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker, domain.StateDirName), nil
		},
	})

	graft.Register(graft.Node[ports.OutputOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputOpener, error) {
			return Opener{}, nil
		},
	})
}
