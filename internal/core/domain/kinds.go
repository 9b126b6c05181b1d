package domain

import "strings"

// UsageState is the per-runtime usage of one export in the tree-shaking lattice.
type UsageState uint8

const (
	// UsageUnknown indicates nothing has resolved the export's usage yet.
	UsageUnknown UsageState = iota
	// UsageUsed indicates the export is referenced in the runtime.
	UsageUsed
	// UsageUnused indicates the export can be dropped for the runtime.
	UsageUnused
)

// String returns the lowercase name of the state.
func (s UsageState) String() string {
	switch s {
	case UsageUsed:
		return "used"
	case UsageUnused:
		return "unused"
	default:
		return "unknown"
	}
}

// ParseUsageState converts a string to a UsageState. An empty string is unknown.
func ParseUsageState(s string) (UsageState, bool) {
	switch strings.ToLower(s) {
	case "used":
		return UsageUsed, true
	case "unused":
		return UsageUnused, true
	case "", "unknown":
		return UsageUnknown, true
	default:
		return UsageUnknown, false
	}
}

// ConnectionState is the liveness of a dependency edge for one runtime.
type ConnectionState uint8

const (
	// ConnectionActive indicates the edge is definitely live.
	ConnectionActive ConnectionState = iota
	// ConnectionInactive indicates the edge is definitely dead.
	ConnectionInactive
	// ConnectionUnknown indicates liveness could not be determined.
	ConnectionUnknown
	// ConnectionTransitiveOnly indicates the edge is only live through its target's side effects.
	ConnectionTransitiveOnly
)

// IsActive reports whether the edge is definitely live.
func (s ConnectionState) IsActive() bool {
	return s == ConnectionActive
}

// String returns the lowercase name of the state.
func (s ConnectionState) String() string {
	switch s {
	case ConnectionActive:
		return "active"
	case ConnectionInactive:
		return "inactive"
	case ConnectionTransitiveOnly:
		return "transitive"
	default:
		return "unknown"
	}
}

// ParseConnectionState converts a string to a ConnectionState. An empty string is unknown.
func ParseConnectionState(s string) (ConnectionState, bool) {
	switch strings.ToLower(s) {
	case "active", "live":
		return ConnectionActive, true
	case "inactive", "dead":
		return ConnectionInactive, true
	case "transitive", "transitive-only":
		return ConnectionTransitiveOnly, true
	case "", "unknown":
		return ConnectionUnknown, true
	default:
		return ConnectionUnknown, false
	}
}

// ModuleKind distinguishes the module variants the optimizer cares about.
type ModuleKind uint8

const (
	// ModuleNormal is an ordinary source module.
	ModuleNormal ModuleKind = iota
	// ModuleProvideShared wraps a local module and exposes it under a share key.
	ModuleProvideShared
	// ModuleConsumeShared resolves a share key against the share scope at runtime.
	ModuleConsumeShared
	// ModuleRuntime is a generated runtime module.
	ModuleRuntime
)

// String returns the snapshot name of the kind.
func (k ModuleKind) String() string {
	switch k {
	case ModuleProvideShared:
		return "provide-shared"
	case ModuleConsumeShared:
		return "consume-shared"
	case ModuleRuntime:
		return "runtime"
	default:
		return "normal"
	}
}

// ParseModuleKind converts a snapshot name to a ModuleKind. An empty string is normal.
func ParseModuleKind(s string) (ModuleKind, bool) {
	switch strings.ToLower(s) {
	case "provide-shared":
		return ModuleProvideShared, true
	case "consume-shared":
		return ModuleConsumeShared, true
	case "runtime":
		return ModuleRuntime, true
	case "", "normal":
		return ModuleNormal, true
	default:
		return ModuleNormal, false
	}
}

// DependencyKind classifies a dependency edge.
type DependencyKind uint8

const (
	// DependencyOther is any edge the optimizer does not inspect.
	DependencyOther DependencyKind = iota
	// DependencyImportSpecifier is a static import binding (import { x } from "y").
	DependencyImportSpecifier
	// DependencyProvideSharedFallback links a provide module to its local fallback.
	DependencyProvideSharedFallback
)

// String returns the snapshot name of the kind.
func (k DependencyKind) String() string {
	switch k {
	case DependencyImportSpecifier:
		return "import-specifier"
	case DependencyProvideSharedFallback:
		return "provide-shared-fallback"
	default:
		return "other"
	}
}

// ParseDependencyKind converts a snapshot name to a DependencyKind. Edges the optimizer
// does not inspect are spelled "other" or left empty.
func ParseDependencyKind(s string) (DependencyKind, bool) {
	switch strings.ToLower(s) {
	case "import-specifier", "esm-import-specifier":
		return DependencyImportSpecifier, true
	case "provide-shared-fallback", "provide-module-for-shared":
		return DependencyProvideSharedFallback, true
	case "", "other":
		return DependencyOther, true
	default:
		return DependencyOther, false
	}
}

// Module describes a module as seen by the optimizer.
type Module struct {
	ID   ModuleID
	Kind ModuleKind
	// ShareKey is set for ModuleProvideShared and ModuleConsumeShared.
	ShareKey string
}

// ProvidedShareKey returns the share key a provide module exposes.
func (m Module) ProvidedShareKey() (string, bool) {
	if m.Kind != ModuleProvideShared || m.ShareKey == "" {
		return "", false
	}
	return m.ShareKey, true
}
