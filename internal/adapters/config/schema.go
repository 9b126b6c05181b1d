package config

// File represents the structure of the sharetree.yaml configuration file.
type File struct {
	Version         string      `yaml:"version"`
	Shared          []SharedDTO `yaml:"shared"`
	IgnoredRuntimes []string    `yaml:"ignoredRuntimes"`
	Overrides       string      `yaml:"overrides"`
	Parallelism     int         `yaml:"parallelism"`
}

// SharedDTO represents one shared dependency in the configuration.
type SharedDTO struct {
	ShareKey    string   `yaml:"shareKey"`
	TreeShake   bool     `yaml:"treeshake"`
	UsedExports []string `yaml:"usedExports"`
}
