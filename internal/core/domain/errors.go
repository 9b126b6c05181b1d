package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleAlreadyExists is returned when a module id is added to a graph twice.
	ErrModuleAlreadyExists = zerr.New("module already exists")

	// ErrMissingModule is returned when a connection or chunk references a module that doesn't exist in the graph.
	ErrMissingModule = zerr.New("missing module")

	// ErrModuleNotFound is raised when the optimizer looks up a module the graph cannot resolve.
	ErrModuleNotFound = zerr.New("module not found in graph")

	// ErrChunkAlreadyExists is returned when a chunk id is added to a graph twice.
	ErrChunkAlreadyExists = zerr.New("chunk already exists")

	// ErrInvalidShareKey is returned when a shared entry has an empty share key.
	ErrInvalidShareKey = zerr.New("share key must not be empty")

	// ErrDuplicateShareKey is returned when the same share key is configured twice.
	ErrDuplicateShareKey = zerr.New("duplicate share key")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOverridesParseFailed is reported when the referenced-exports override source is malformed.
	ErrOverridesParseFailed = zerr.New("failed to parse referenced exports overrides")

	// ErrOverridesReadFailed is reported when the referenced-exports override file cannot be read.
	ErrOverridesReadFailed = zerr.New("failed to read referenced exports overrides")

	// ErrGraphReadFailed is returned when the graph snapshot cannot be read.
	ErrGraphReadFailed = zerr.New("failed to read graph snapshot")

	// ErrGraphParseFailed is returned when the graph snapshot cannot be parsed.
	ErrGraphParseFailed = zerr.New("failed to parse graph snapshot")

	// ErrInvalidSnapshot is returned when a graph snapshot names an unknown kind or state.
	ErrInvalidSnapshot = zerr.New("invalid graph snapshot")

	// ErrManifestParseFailed is returned when the stats manifest asset is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse manifest asset")

	// ErrManifestSerializeFailed is returned when the patched stats manifest cannot be serialized.
	ErrManifestSerializeFailed = zerr.New("failed to serialize manifest asset")

	// ErrAssetNotFound is returned when an asset update targets a missing asset.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrAssetReadFailed is returned when an asset cannot be read from the output directory.
	ErrAssetReadFailed = zerr.New("failed to read asset")

	// ErrAssetWriteFailed is returned when an asset cannot be written to the output directory.
	ErrAssetWriteFailed = zerr.New("failed to write asset")

	// ErrStoreReadFailed is returned when the usage report store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read usage report store")

	// ErrStoreUnmarshalFailed is returned when the usage report store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal usage report store")

	// ErrStoreMarshalFailed is returned when the usage report store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal usage report store")

	// ErrStoreCreateFailed is returned when the usage report store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create usage report store directory")

	// ErrStoreWriteFailed is returned when the usage report store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write usage report store")

	// ErrOptimizationFailed is returned when an optimization pass fails.
	ErrOptimizationFailed = zerr.New("shared export optimization failed")

	// ErrNoGraphSpecified is returned when no graph snapshot path is given.
	ErrNoGraphSpecified = zerr.New("no graph snapshot specified")

	// ErrUnknownTracer is returned when an unsupported tracer backend is requested.
	ErrUnknownTracer = zerr.New("unknown tracer backend")

	// ErrWatcherStarted is returned when Start is called on a watcher that already runs.
	ErrWatcherStarted = zerr.New("file watcher already started")
)
