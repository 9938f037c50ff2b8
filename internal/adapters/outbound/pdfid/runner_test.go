package pdfid_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/pdfid"
	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shellTool writes a shell script and returns it as a Tool so the runner can
// be exercised without a real pdfid install.
func shellTool(t *testing.T, body string) domain.Tool {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script tool stubs are not portable to windows")
	}
	script := filepath.Join(t.TempDir(), "tool.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+body), 0o755))
	return domain.Tool{Interpreter: "/bin/sh", Script: script}
}

func TestRunner_Success(t *testing.T) {
	tool := shellTool(t, `echo "banner $1"; echo banner2; echo "/JS 1"`)

	res := pdfid.NewRunner().Run(context.Background(), tool, "sample.pdf", 10*time.Second, 1)

	assert.False(t, res.TimedOut)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Stdout, "/JS 1")
}

func TestRunner_NonZeroExit(t *testing.T) {
	tool := shellTool(t, `echo "cannot parse" >&2; exit 3`)

	res := pdfid.NewRunner().Run(context.Background(), tool, "sample.pdf", 10*time.Second, 1)

	assert.False(t, res.TimedOut)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Stderr, "cannot parse")
}

func TestRunner_Timeout(t *testing.T) {
	tool := shellTool(t, `sleep 30`)

	start := time.Now()
	res := pdfid.NewRunner().Run(context.Background(), tool, "sample.pdf", 200*time.Millisecond, 1)

	assert.True(t, res.TimedOut)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRunner_SpawnFailureLooksLikeFailedRun(t *testing.T) {
	tool := domain.Tool{Script: filepath.Join(t.TempDir(), "does-not-exist")}

	res := pdfid.NewRunner().Run(context.Background(), tool, "sample.pdf", time.Second, 1)

	assert.False(t, res.TimedOut)
	assert.NotZero(t, res.ExitCode)
	assert.NotEmpty(t, res.Stderr)
}
