package pdfid

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
)

// EnvToolPath overrides tool discovery when set.
const EnvToolPath = "PDFSCAN_PDFID"

// Locator implements domain.ToolLocator. Resolution order: explicit policy
// path, PDFSCAN_PDFID, pdfid on PATH, then well-known install locations.
type Locator struct {
	// toolPath is the explicit path from policy, may be empty.
	toolPath string

	// Overridable in tests.
	lookPath func(file string) (string, error)
	getenv   func(key string) string
	stat     func(name string) (os.FileInfo, error)
}

// NewLocator returns a Locator honoring the given explicit tool path.
func NewLocator(toolPath string) *Locator {
	return &Locator{
		toolPath: toolPath,
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		stat:     os.Stat,
	}
}

func (l *Locator) Locate() (domain.Tool, bool) {
	if l.toolPath != "" {
		if tool, ok := l.toolAt(l.toolPath); ok {
			return tool, true
		}
	}

	if envPath := l.getenv(EnvToolPath); envPath != "" {
		if tool, ok := l.toolAt(envPath); ok {
			return tool, true
		}
	}

	if path, err := l.lookPath("pdfid"); err == nil {
		return domain.Tool{Script: path}, true
	}

	for _, candidate := range wellKnownPaths() {
		if tool, ok := l.toolAt(candidate); ok {
			return tool, true
		}
	}

	return domain.Tool{}, false
}

func (l *Locator) toolAt(path string) (domain.Tool, bool) {
	info, err := l.stat(path)
	if err != nil || info.IsDir() {
		return domain.Tool{}, false
	}
	if strings.EqualFold(filepath.Ext(path), ".py") {
		return domain.Tool{Interpreter: "python3", Script: path}, true
	}
	return domain.Tool{Script: path}, true
}

func wellKnownPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, "pdfid", "pdfid.py"),
			filepath.Join(home, "pdfid", "pdfid", "pdfid.py"),
		)
	}
	return append(paths,
		"/usr/local/bin/pdfid.py",
		"/opt/pdfid/pdfid.py",
	)
}
