package graph_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/adapters/graph"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	indexID    = domain.NewModuleID("./src/index.js")
	adminID    = domain.NewModuleID("./src/admin.js")
	provideID  = domain.NewModuleID("provide:react")
	fallbackID = domain.NewModuleID("./node_modules/react/index.js")
	mainRT     = domain.NewRuntimeSpec("main")
	adminRT    = domain.NewRuntimeSpec("admin")
)

func loadFixture(t *testing.T) *graph.Graph {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "react_app.json"))
	require.NoError(t, err)
	g, err := graph.Parse(data)
	require.NoError(t, err)
	return g
}

func TestParse_Modules(t *testing.T) {
	g := loadFixture(t)

	ids := slices.Collect(g.Modules())
	assert.Equal(t, []domain.ModuleID{indexID, adminID, provideID, fallbackID}, ids)

	provide, ok := g.Module(provideID)
	require.True(t, ok)
	shareKey, ok := provide.ProvidedShareKey()
	require.True(t, ok)
	assert.Equal(t, "react", shareKey)

	assert.True(t, g.SideEffectFree(fallbackID))
	assert.False(t, g.SideEffectFree(indexID))
}

func TestParse_Connections(t *testing.T) {
	g := loadFixture(t)

	conns := g.Connections(indexID)
	require.Len(t, conns, 1)
	assert.Equal(t, domain.DependencyImportSpecifier, conns[0].Kind())
	assert.Equal(t, "react", conns[0].Request())
	assert.Equal(t, provideID, conns[0].Target())
	assert.Equal(t, []string{"useState"}, conns[0].ReferencedExports(mainRT))

	adminConns := g.Connections(adminID)
	require.Len(t, adminConns, 1)
	assert.Equal(t, domain.DependencyImportSpecifier, adminConns[0].Kind())
	assert.Equal(t, []string{"useMemo"}, adminConns[0].ReferencedExports(adminRT))
	assert.Empty(t, adminConns[0].ReferencedExports(mainRT))
	assert.Equal(t, domain.ConnectionActive, adminConns[0].ActiveState(adminRT))
	assert.Equal(t, domain.ConnectionInactive, adminConns[0].ActiveState(domain.NewRuntimeSpec("worker")))

	fallbackConns := g.Connections(provideID)
	require.Len(t, fallbackConns, 1)
	assert.Equal(t, domain.DependencyProvideSharedFallback, fallbackConns[0].Kind())
	assert.Equal(t, fallbackID, fallbackConns[0].Target())
}

func TestParse_ExportsSeeded(t *testing.T) {
	g := loadFixture(t)

	info, ok := g.ExportsInfo(fallbackID)
	require.True(t, ok)
	assert.Equal(t, 2, info.Len())

	useState, ok := info.Export("useState")
	require.True(t, ok)
	assert.Equal(t, domain.UsageUnknown, useState.Used(mainRT))

	useEffect, ok := info.Export("useEffect")
	require.True(t, ok)
	assert.Equal(t, domain.UsageUsed, useEffect.Used(mainRT))
	assert.Equal(t, domain.UsageUnknown, useEffect.Used(adminRT))

	assert.Equal(t, domain.UsageUnused, info.Other().Used(mainRT))
}

func TestParse_Chunks(t *testing.T) {
	g := loadFixture(t)

	assert.Equal(t, []domain.ChunkID{"main", "admin"}, g.RuntimeChunks())
	assert.Equal(t, []domain.RuntimeSpec{mainRT}, g.ModuleRuntimes(indexID))
	assert.Equal(t, []domain.RuntimeSpec{domain.NewRuntimeSpec("admin", "main")}, g.ModuleRuntimes(fallbackID))
	assert.Empty(t, g.ModuleRuntimes(domain.NewModuleID("unknown")))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantErr  string
		wantMeta map[string]any
	}{
		{
			name:    "invalid json",
			json:    `{"modules": [`,
			wantErr: domain.ErrGraphParseFailed.Error(),
		},
		{
			name:     "duplicate module",
			json:     `{"modules": [{"id": "a"}, {"id": "a"}]}`,
			wantErr:  domain.ErrModuleAlreadyExists.Error(),
			wantMeta: map[string]any{"module": "a"},
		},
		{
			name:     "missing edge target",
			json:     `{"modules": [{"id": "a", "dependencies": [{"kind": "import-specifier", "request": "b", "target": "b"}]}]}`,
			wantErr:  domain.ErrMissingModule.Error(),
			wantMeta: map[string]any{"module": "b", "origin": "a"},
		},
		{
			name:     "chunk with unknown module",
			json:     `{"chunks": [{"id": "main", "runtime": "main", "modules": ["x"]}], "modules": []}`,
			wantErr:  domain.ErrMissingModule.Error(),
			wantMeta: map[string]any{"module": "x", "chunk": "main"},
		},
		{
			name:     "duplicate chunk",
			json:     `{"chunks": [{"id": "main", "runtime": "main"}, {"id": "main", "runtime": "main"}]}`,
			wantErr:  domain.ErrChunkAlreadyExists.Error(),
			wantMeta: map[string]any{"chunk": "main"},
		},
		{
			name:     "unknown module kind",
			json:     `{"modules": [{"id": "provide:react", "kind": "provide-shard", "shareKey": "react"}]}`,
			wantErr:  domain.ErrInvalidSnapshot.Error(),
			wantMeta: map[string]any{"module": "provide:react", "field": "kind", "value": "provide-shard"},
		},
		{
			name: "unknown dependency kind",
			json: `{"modules": [{"id": "a", "dependencies": [{"kind": "import-specifer", "request": "b", "target": "b"}]},
				{"id": "b"}]}`,
			wantErr:  domain.ErrInvalidSnapshot.Error(),
			wantMeta: map[string]any{"module": "a", "field": "dependencies.kind", "value": "import-specifer"},
		},
		{
			name: "unknown activity state",
			json: `{"modules": [{"id": "a", "dependencies": [{"kind": "import-specifier", "request": "b", "target": "b",
				"activity": {"main": "actve"}}]}, {"id": "b"}]}`,
			wantErr:  domain.ErrInvalidSnapshot.Error(),
			wantMeta: map[string]any{"module": "a", "field": "dependencies.activity", "value": "actve"},
		},
		{
			name:     "unknown export state",
			json:     `{"modules": [{"id": "a", "exports": {"useState": {"main": "usd"}}}]}`,
			wantErr:  domain.ErrInvalidSnapshot.Error(),
			wantMeta: map[string]any{"module": "a", "field": "exports.useState", "value": "usd"},
		},
		{
			name:     "unknown other exports state",
			json:     `{"modules": [{"id": "a", "otherExports": {"main": "gone"}}]}`,
			wantErr:  domain.ErrInvalidSnapshot.Error(),
			wantMeta: map[string]any{"module": "a", "field": "otherExports", "value": "gone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graph.Parse([]byte(tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			if tt.wantMeta == nil {
				return
			}
			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			for key, want := range tt.wantMeta {
				assert.Equal(t, want, zErr.Metadata()[key], "metadata %q", key)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	loader := graph.NewLoader()

	modules, chunks, err := loader.Load(filepath.Join("testdata", "react_app.json"))
	require.NoError(t, err)
	assert.NotNil(t, modules)
	assert.Len(t, chunks.RuntimeChunks(), 2)

	_, _, err = loader.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrGraphReadFailed.Error())
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Contains(t, zErr.Metadata()["path"], "missing.json")
}

func TestParseRuntime(t *testing.T) {
	assert.Equal(t, "admin_main", graph.ParseRuntime(" main , admin,main").String())
	assert.True(t, graph.ParseRuntime("").IsEmpty())
}
