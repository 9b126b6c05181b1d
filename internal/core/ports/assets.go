package ports

import "go.trai.ch/sharetree/internal/core/domain"

// AssetStore gives access to the build's emitted assets.
//
//go:generate go run go.uber.org/mock/mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetStore interface {
	// Has reports whether an asset with the given name was emitted.
	Has(name string) bool

	// Update replaces the content of an existing asset with the result of fn.
	// An error returned by fn aborts the update and is returned unchanged.
	Update(name string, fn func(content []byte) ([]byte, error)) error
}

// RuntimeModuleSink receives generated runtime modules for a chunk.
type RuntimeModuleSink interface {
	// AddRuntimeModule attaches module to the runtime of chunk.
	AddRuntimeModule(chunk domain.ChunkID, module *domain.RuntimeModule) error
}

// BuildOutput is the emitted output of one build: its assets plus the sink for
// generated runtime modules.
type BuildOutput interface {
	AssetStore
	RuntimeModuleSink
}

// OutputOpener opens the build output rooted at a directory.
type OutputOpener interface {
	Open(dir string) (BuildOutput, error)
}
