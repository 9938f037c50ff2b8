package domain

import (
	"fmt"
	"time"
)

// TimeoutStep is one rung of the size-scaled timeout ladder: files up to
// MaxSizeMB get Timeout.
type TimeoutStep struct {
	MaxSizeMB float64       `yaml:"max_size_mb" json:"max_size_mb"`
	Timeout   time.Duration `yaml:"timeout"     json:"timeout"`
}

// yamlTimeoutStep mirrors TimeoutStep with the timeout as a duration string
// ("30s", "3m"), the form used in .pdfscan.yaml.
type yamlTimeoutStep struct {
	MaxSizeMB float64 `yaml:"max_size_mb"`
	Timeout   string  `yaml:"timeout"`
}

func (s *TimeoutStep) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw yamlTimeoutStep
	if err := unmarshal(&raw); err != nil {
		return err
	}
	d, err := time.ParseDuration(raw.Timeout)
	if err != nil {
		return fmt.Errorf("timeout step for %v MB: %w", raw.MaxSizeMB, err)
	}
	s.MaxSizeMB = raw.MaxSizeMB
	s.Timeout = d
	return nil
}

func (s TimeoutStep) MarshalYAML() (interface{}, error) {
	return yamlTimeoutStep{MaxSizeMB: s.MaxSizeMB, Timeout: s.Timeout.String()}, nil
}

// Policy holds every externally overridable scanning limit. Deployments
// diverge on these figures (25 MB legacy limit vs 1024 MB), so nothing here
// is treated as a compiled-in constant by callers.
type Policy struct {
	MaxFileSizeMB       float64               `yaml:"max_file_size_mb"        json:"max_file_size_mb"`
	WarningFileSizeMB   float64               `yaml:"warning_file_size_mb"    json:"warning_file_size_mb"`
	VeryLargeFileSizeMB float64               `yaml:"very_large_file_size_mb" json:"very_large_file_size_mb"`
	MaxWorkers          int                   `yaml:"max_workers"             json:"max_workers"`
	BatchWorkers        int                   `yaml:"batch_workers"           json:"batch_workers"`
	ToolPath            string                `yaml:"tool_path"               json:"tool_path,omitempty"`
	TimeoutSteps        []TimeoutStep         `yaml:"timeout_steps"           json:"timeout_steps"`
	Threats             map[string]ThreatRule `yaml:"threats"                 json:"threats,omitempty"`
}

// DefaultPolicy returns the reference deployment configuration.
func DefaultPolicy() Policy {
	return Policy{
		MaxFileSizeMB:       1024,
		WarningFileSizeMB:   10,
		VeryLargeFileSizeMB: 500,
		MaxWorkers:          4,
		BatchWorkers:        2,
		TimeoutSteps: []TimeoutStep{
			{MaxSizeMB: 10, Timeout: 30 * time.Second},
			{MaxSizeMB: 100, Timeout: 60 * time.Second},
			{MaxSizeMB: 500, Timeout: 180 * time.Second},
		},
	}
}

// fallbackTimeout applies to files beyond the last timeout step.
const fallbackTimeout = 300 * time.Second

// TimeoutFor derives the scan timeout for a file of the given size. The
// ladder is validated to be monotonic, so larger files never get a shorter
// budget than smaller ones.
func (p Policy) TimeoutFor(sizeMB float64) time.Duration {
	for _, step := range p.TimeoutSteps {
		if sizeMB <= step.MaxSizeMB {
			return step.Timeout
		}
	}
	if n := len(p.TimeoutSteps); n > 0 && p.TimeoutSteps[n-1].Timeout > fallbackTimeout {
		return p.TimeoutSteps[n-1].Timeout
	}
	return fallbackTimeout
}

// Validate rejects configurations that would break scan invariants.
func (p Policy) Validate() error {
	if p.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max_file_size_mb must be positive, got %v", p.MaxFileSizeMB)
	}
	if p.WarningFileSizeMB <= 0 {
		return fmt.Errorf("warning_file_size_mb must be positive, got %v", p.WarningFileSizeMB)
	}
	if p.VeryLargeFileSizeMB < p.WarningFileSizeMB {
		return fmt.Errorf("very_large_file_size_mb (%v) must not be below warning_file_size_mb (%v)",
			p.VeryLargeFileSizeMB, p.WarningFileSizeMB)
	}
	if p.MaxWorkers < 1 {
		return fmt.Errorf("max_workers must be at least 1, got %d", p.MaxWorkers)
	}
	if p.BatchWorkers < 1 {
		return fmt.Errorf("batch_workers must be at least 1, got %d", p.BatchWorkers)
	}
	for i := 1; i < len(p.TimeoutSteps); i++ {
		prev, cur := p.TimeoutSteps[i-1], p.TimeoutSteps[i]
		if cur.MaxSizeMB <= prev.MaxSizeMB {
			return fmt.Errorf("timeout_steps sizes must be strictly increasing, step %d (%v MB) follows %v MB",
				i, cur.MaxSizeMB, prev.MaxSizeMB)
		}
		if cur.Timeout < prev.Timeout {
			return fmt.Errorf("timeout_steps budgets must be non-decreasing, step %d (%v) follows %v",
				i, cur.Timeout, prev.Timeout)
		}
	}
	return nil
}

// Table builds the effective threat table: defaults merged with policy
// overrides.
func (p Policy) Table() ThreatTable {
	return DefaultThreatTable().Merge(p.Threats)
}
