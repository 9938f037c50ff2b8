// Package config loads scan policy from .pdfscan.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".pdfscan.yaml"

// YAMLLoader reads policy overrides from a directory's .pdfscan.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pdfscan.yaml from dir. A missing file yields DefaultPolicy;
// explicit settings overlay the defaults so a partial file stays valid.
func (l *YAMLLoader) Load(dir string) (domain.Policy, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultPolicy(), nil
		}
		return domain.Policy{}, fmt.Errorf("reading %s: %w", fileName, err)
	}
	return Parse(data)
}

// Parse decodes and validates a policy document.
func Parse(data []byte) (domain.Policy, error) {
	var overrides domain.Policy
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return domain.Policy{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	policy := merge(domain.DefaultPolicy(), overrides)
	if err := policy.Validate(); err != nil {
		return domain.Policy{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return policy, nil
}

// merge overlays explicit (non-zero) overrides on top of the defaults.
// Zero values read back as "unset", so a literal `warning_file_size_mb: 0`
// keeps the default rather than zeroing the threshold. Validate rejects
// non-positive figures anyway, so no meaningful setting is lost.
func merge(base, override domain.Policy) domain.Policy {
	result := base
	if override.MaxFileSizeMB != 0 {
		result.MaxFileSizeMB = override.MaxFileSizeMB
	}
	if override.WarningFileSizeMB != 0 {
		result.WarningFileSizeMB = override.WarningFileSizeMB
	}
	if override.VeryLargeFileSizeMB != 0 {
		result.VeryLargeFileSizeMB = override.VeryLargeFileSizeMB
	}
	if override.MaxWorkers != 0 {
		result.MaxWorkers = override.MaxWorkers
	}
	if override.BatchWorkers != 0 {
		result.BatchWorkers = override.BatchWorkers
	}
	if override.ToolPath != "" {
		result.ToolPath = override.ToolPath
	}
	if len(override.TimeoutSteps) > 0 {
		result.TimeoutSteps = override.TimeoutSteps
	}
	if len(override.Threats) > 0 {
		result.Threats = override.Threats
	}
	return result
}
