package optimizer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/adapters/graph"
	"go.trai.ch/sharetree/internal/adapters/telemetry"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports/mocks"
	"go.trai.ch/sharetree/internal/engine/optimizer"
	"go.uber.org/mock/gomock"
)

var errSink = errors.New("sink closed")

var (
	appID      = domain.NewModuleID("./src/app.js")
	provideID  = domain.NewModuleID("provide:react")
	fallbackID = domain.NewModuleID("./node_modules/react/index.js")

	mainRuntime   = domain.NewRuntimeSpec("main")
	workerRuntime = domain.NewRuntimeSpec("worker")
)

// reactGraph builds app -> react with a side-effect-free fallback exporting
// useState, useEffect and useMemo, all scheduled in the "main" runtime.
func reactGraph(t *testing.T, edges ...*graph.Edge) *graph.Graph {
	t.Helper()
	return buildReactGraph(t, true, edges...)
}

func buildReactGraph(t *testing.T, fallbackSideEffectFree bool, edges ...*graph.Edge) *graph.Graph {
	t.Helper()

	g := graph.NewGraph()
	require.NoError(t, g.AddModule(domain.Module{ID: appID}, false))
	require.NoError(t, g.AddModule(domain.Module{ID: provideID, Kind: domain.ModuleProvideShared, ShareKey: "react"}, false))
	require.NoError(t, g.AddModule(domain.Module{ID: fallbackID}, fallbackSideEffectFree))

	info, ok := g.ExportsInfo(fallbackID)
	require.True(t, ok)
	for _, name := range []string{"useState", "useEffect", "useMemo"} {
		info.EnsureExport(name)
	}

	require.NoError(t, g.AddConnection(provideID,
		graph.NewEdge(domain.DependencyProvideSharedFallback, "", fallbackID)))
	for _, edge := range edges {
		require.NoError(t, g.AddConnection(appID, edge))
	}

	require.NoError(t, g.AddChunk("main", mainRuntime, true, appID, provideID, fallbackID))
	require.NoError(t, g.Validate())
	return g
}

func importReact(opts ...graph.EdgeOption) *graph.Edge {
	return graph.NewEdge(domain.DependencyImportSpecifier, "react", provideID, opts...)
}

func reactOptions(opts ...func(*domain.Options)) domain.Options {
	o := domain.Options{
		Shared:      []domain.SharedSpec{{ShareKey: "react", TreeShake: true}},
		Parallelism: 2,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newOptimizer(t *testing.T, opts domain.Options) *optimizer.Optimizer {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return optimizer.New(opts, logger, telemetry.NewNoOpTracer())
}

// runPass creates a session and runs one optimization pass over g.
func runPass(t *testing.T, opt *optimizer.Optimizer, g *graph.Graph) *domain.Session {
	t.Helper()

	session := opt.NewSession(optimizer.NewRegistry())
	require.NoError(t, opt.OptimizeDependencies(context.Background(), session, g, g))
	return session
}

func usage(t *testing.T, g *graph.Graph, name string, rt domain.RuntimeSpec) domain.UsageState {
	t.Helper()

	info, ok := g.ExportsInfo(fallbackID)
	require.True(t, ok)
	if name == "" {
		return info.Other().Used(rt)
	}
	export, ok := info.Export(name)
	require.True(t, ok, "export %s is not tracked", name)
	return export.Used(rt)
}
