package ports

// GraphLoader defines the interface for loading a module/chunk graph snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load reads the snapshot at path and returns its module and chunk graphs.
	Load(path string) (ModuleGraph, ChunkGraph, error)
}
