package application

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
)

const bytesPerMB = 1024 * 1024

// admitted is the outcome of a passed admission check.
type admitted struct {
	sizeMB  float64
	timeout time.Duration
}

// admit validates the request before any process is spawned. Checks run in
// order and short-circuit: existence, extension, size, timeout derivation.
// A failed check returns the terminal result for the scan.
func (s *ScanService) admit(req domain.ScanRequest) (admitted, *domain.ScanResult) {
	info, err := s.stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res := domain.FailureResult(req.Path, domain.FailureNotFound,
				"File not found",
				fmt.Sprintf("file does not exist: %s", req.Path),
				domain.FailureRecommendations(domain.FailureNotFound, s.policy, 0, 0))
			return admitted{}, &res
		}
		res := domain.FailureResult(req.Path, domain.FailureAccess,
			"File access error",
			fmt.Sprintf("cannot access file: %v", err),
			domain.FailureRecommendations(domain.FailureAccess, s.policy, 0, 0))
		return admitted{}, &res
	}
	if !info.Mode().IsRegular() {
		res := domain.FailureResult(req.Path, domain.FailureNotFound,
			"File not found",
			fmt.Sprintf("file does not exist: %s is not a regular file", req.Path),
			domain.FailureRecommendations(domain.FailureNotFound, s.policy, 0, 0))
		return admitted{}, &res
	}

	if !strings.EqualFold(filepath.Ext(req.Path), ".pdf") {
		res := domain.FailureResult(req.Path, domain.FailureInvalidType,
			"Invalid file type",
			"file is not a PDF document",
			domain.FailureRecommendations(domain.FailureInvalidType, s.policy, 0, 0))
		return admitted{}, &res
	}

	sizeMB := float64(info.Size()) / bytesPerMB
	if sizeMB > s.policy.MaxFileSizeMB {
		res := domain.FailureResult(req.Path, domain.FailureTooLarge,
			"File too large",
			fmt.Sprintf("file size (%.1f MB) exceeds maximum allowed size (%.0f MB)",
				sizeMB, s.policy.MaxFileSizeMB),
			domain.FailureRecommendations(domain.FailureTooLarge, s.policy, sizeMB, 0))
		res.Details["file_size_mb"] = roundMB(sizeMB)
		return admitted{}, &res
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = s.policy.TimeoutFor(sizeMB)
	}

	if sizeMB > s.policy.WarningFileSizeMB {
		req.Progress.Emit(fmt.Sprintf("large file detected (%.1f MB) - this may take longer", sizeMB))
	}

	return admitted{sizeMB: sizeMB, timeout: timeout}, nil
}

func roundMB(sizeMB float64) int {
	return int(math.Round(sizeMB))
}
