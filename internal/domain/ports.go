package domain

import (
	"context"
	"time"
)

// Tool identifies the external analysis command. Script is the tool's own
// path; Interpreter is non-empty when the tool is a script that needs one
// (e.g. python3 for pdfid.py).
type Tool struct {
	Interpreter string
	Script      string
}

// Command returns the full argv for analyzing the given file.
func (t Tool) Command(filePath string) []string {
	if t.Interpreter != "" {
		return []string{t.Interpreter, t.Script, filePath}
	}
	return []string{t.Script, filePath}
}

// ToolLocator finds the external analysis tool on the host.
type ToolLocator interface {
	Locate() (Tool, bool)
}

// RunResult is the tagged outcome of one external tool invocation. Launch
// failures are folded into a non-zero ExitCode with the spawn error as
// Stderr, so callers handle exactly three shapes: success, failure, timeout.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// ToolRunner executes the analysis tool against one file under a deadline.
// Implementations may apply a best-effort scheduling priority hint scaled by
// sizeMB; the hint must never affect correctness.
type ToolRunner interface {
	Run(ctx context.Context, tool Tool, filePath string, timeout time.Duration, sizeMB float64) RunResult
}
