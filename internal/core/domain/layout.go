package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".sharetree"

	// StoreDirName is the name of the usage report store directory.
	StoreDirName = "store"

	// UsageReportFileName is the name of the usage report store file.
	UsageReportFileName = "usage.json"

	// ConfigFileName is the name of the optimizer configuration file.
	ConfigFileName = "sharetree.yaml"

	// StatsManifestName is the name of the build manifest asset patched with used exports.
	StatsManifestName = "mf-stats.json"

	// OverridesEnvVar holds a JSON object of share key to forced export names.
	OverridesEnvVar = "MF_CUSTOM_REFERENCED_EXPORTS"

	// UsedExportsRuntimeModuleName is the name of the generated runtime module.
	UsedExportsRuntimeModuleName = "sharing/used_exports"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path of the usage report store file.
// It joins .sharetree, store and usage.json.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName, UsageReportFileName)
}
