package pdfid

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
)

// Runner implements domain.ToolRunner with os/exec. One child process per
// scan, no retries; the timeout is enforced at the process level through the
// command context.
type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Run(ctx context.Context, tool domain.Tool, filePath string, timeout time.Duration, sizeMB float64) domain.RunResult {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	argv := tool.Command(filePath)
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		// Spawn failure takes the same shape as a failed run: the caller
		// handles exactly success, failure, or timeout.
		return domain.RunResult{ExitCode: 1, Stderr: err.Error()}
	}

	// Larger files get a stronger deprioritization hint. Best-effort only:
	// a failed hint never affects the scan.
	deprioritize(cmd.Process.Pid, niceFor(sizeMB))

	err := cmd.Wait()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return domain.RunResult{TimedOut: true, Stderr: stderr.String()}
	}
	if err != nil {
		return domain.RunResult{
			ExitCode: exitCode(err),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}

	return domain.RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
}

func niceFor(sizeMB float64) int {
	if sizeMB > 100 {
		return 15
	}
	return 10
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
