package domain

import "time"

// FailureKind categorizes why a scan could not produce a threat assessment.
type FailureKind string

const (
	FailureNotFound        FailureKind = "not_found"
	FailureInvalidType     FailureKind = "invalid_type"
	FailureTooLarge        FailureKind = "too_large"
	FailureAccess          FailureKind = "access_error"
	FailureToolUnavailable FailureKind = "tool_unavailable"
	FailureProcess         FailureKind = "process_failure"
	FailureTimeout         FailureKind = "timeout"
	FailureUnexpected      FailureKind = "unexpected_error"
)

// ScanRequest describes one scan invocation. Timeout zero means "derive from
// file size"; Progress may be nil.
type ScanRequest struct {
	Path     string
	Timeout  time.Duration
	Progress ProgressSink
}

// ScanResult is the sole output artifact of a scan attempt, successful or
// not. It is immutable once constructed. A failed scan always carries
// LevelSafe: failure is an error signal, not a threat signal.
type ScanResult struct {
	FilePath        string         `json:"file_path"`
	Success         bool           `json:"success"`
	ThreatLevel     ThreatLevel    `json:"threat_level"`
	Summary         string         `json:"summary"`
	Details         map[string]int `json:"details,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	Failure         FailureKind    `json:"failure,omitempty"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	ScanTime        time.Duration  `json:"scan_time"`
}

// FailureResult builds the terminal result for a scan that could not
// complete.
func FailureResult(path string, kind FailureKind, summary, errMsg string, recs []string) ScanResult {
	return ScanResult{
		FilePath:        path,
		Success:         false,
		ThreatLevel:     LevelSafe,
		Summary:         summary,
		Details:         map[string]int{},
		Recommendations: recs,
		Failure:         kind,
		ErrorMessage:    errMsg,
	}
}

// ProgressSink receives free-text status strings during a scan. It never
// affects control flow; implementations must tolerate concurrent delivery
// being serialized upstream.
type ProgressSink func(status string)

// Emit sends a status string if the sink is set.
func (p ProgressSink) Emit(status string) {
	if p != nil {
		p(status)
	}
}
