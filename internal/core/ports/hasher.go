package ports

// Hasher computes content digests of optimizer inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash returns one digest over the contents of the given files
	// and directories.
	ComputeInputHash(paths ...string) (string, error)
}
