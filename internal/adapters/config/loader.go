// Package config provides the configuration loader for sharetree.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file plus the
// referenced-exports overrides from a JSON file and the environment.
type Loader struct {
	logger ports.Logger
	// Getenv reads the environment. It defaults to os.Getenv.
	Getenv func(key string) string
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger: logger,
		Getenv: os.Getenv,
	}
}

// Load reads the configuration file at path and returns the optimizer options.
// Malformed override sources are reported as warnings and ignored.
func (l *Loader) Load(path string) (domain.Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Options{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Options{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	shared, err := buildShared(file.Shared)
	if err != nil {
		return domain.Options{}, zerr.With(err, "path", path)
	}

	overrides := domain.OverrideMap{}
	if file.Overrides != "" {
		overridesPath := file.Overrides
		if !filepath.IsAbs(overridesPath) {
			overridesPath = filepath.Join(filepath.Dir(path), overridesPath)
		}
		overrides = overrides.Merge(l.loadOverridesFile(overridesPath))
	}
	overrides = overrides.Merge(l.loadOverridesEnv())

	return domain.Options{
		Shared:          shared,
		IgnoredRuntimes: canonicalizeStrings(file.IgnoredRuntimes),
		Overrides:       overrides,
		Parallelism:     file.Parallelism,
	}, nil
}

func buildShared(dtos []SharedDTO) ([]domain.SharedSpec, error) {
	seen := make(map[string]struct{}, len(dtos))
	shared := make([]domain.SharedSpec, 0, len(dtos))

	for i, dto := range dtos {
		key := strings.TrimSpace(dto.ShareKey)
		if key == "" {
			return nil, zerr.With(domain.ErrInvalidShareKey, "index", i)
		}
		if _, ok := seen[key]; ok {
			return nil, zerr.With(domain.ErrDuplicateShareKey, "share_key", key)
		}
		seen[key] = struct{}{}

		shared = append(shared, domain.SharedSpec{
			ShareKey:    key,
			TreeShake:   dto.TreeShake,
			UsedExports: canonicalizeStrings(dto.UsedExports),
		})
	}

	return shared, nil
}

func (l *Loader) loadOverridesFile(path string) domain.OverrideMap {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the config file
	if err != nil {
		l.warn(zerr.With(zerr.Wrap(err, domain.ErrOverridesReadFailed.Error()), "path", path))
		return nil
	}

	overrides, err := parseOverrides(data)
	if err != nil {
		l.warn(zerr.With(err, "path", path))
		return nil
	}
	return overrides
}

func (l *Loader) loadOverridesEnv() domain.OverrideMap {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	raw := getenv(domain.OverridesEnvVar)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	overrides, err := parseOverrides([]byte(raw))
	if err != nil {
		l.warn(zerr.With(err, "env", domain.OverridesEnvVar))
		return nil
	}
	return overrides
}

// parseOverrides decodes a JSON object of share key to export names.
func parseOverrides(data []byte) (domain.OverrideMap, error) {
	var overrides domain.OverrideMap
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, zerr.Wrap(err, domain.ErrOverridesParseFailed.Error())
	}
	return overrides, nil
}

func (l *Loader) warn(err error) {
	if l.logger == nil {
		return
	}
	l.logger.Warn(err.Error())
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
