package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sharetree/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/adapters/graph"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/sharetree/internal/engine/optimizer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			graph.NodeID,
			fs.OpenerNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			optimizer.RegistryNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	graphLoader, err := graft.Dep[ports.GraphLoader](ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := graft.Dep[ports.OutputOpener](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.UsageReportStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*optimizer.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, graphLoader, outputs, store, hasher, fileWatcher, log, tracer, registry), nil
}
