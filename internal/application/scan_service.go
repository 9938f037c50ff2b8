// Package application wires the domain to its adapters: the single-file scan
// pipeline and the concurrent batch scheduler.
package application

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
)

// OutputParser converts raw tool stdout into keyword counts.
type OutputParser interface {
	Parse(stdout string) map[string]int
}

// ScanService runs the scan pipeline for one file: admission checks, tool
// lookup, execution, output parsing, classification, recommendations.
// Every terminal condition, including a panic, yields a ScanResult; the
// pipeline never propagates a failure to its caller.
type ScanService struct {
	policy  domain.Policy
	table   domain.ThreatTable
	locator domain.ToolLocator
	runner  domain.ToolRunner
	parser  OutputParser

	// stat is overridable in tests to inject metadata faults.
	stat func(name string) (fs.FileInfo, error)
}

func NewScanService(
	policy domain.Policy,
	locator domain.ToolLocator,
	runner domain.ToolRunner,
	parser OutputParser,
) *ScanService {
	return &ScanService{
		policy:  policy,
		table:   policy.Table(),
		locator: locator,
		runner:  runner,
		parser:  parser,
		stat:    os.Stat,
	}
}

// Policy returns the policy the service was built with.
func (s *ScanService) Policy() domain.Policy { return s.policy }

// Table returns the effective threat rule table.
func (s *ScanService) Table() domain.ThreatTable { return s.table }

// Scan analyzes one file and always returns a terminal ScanResult.
func (s *ScanService) Scan(ctx context.Context, req domain.ScanRequest) (res domain.ScanResult) {
	start := time.Now()
	var sizeMB float64
	defer func() {
		if r := recover(); r != nil {
			res = domain.FailureResult(req.Path, domain.FailureUnexpected,
				"Unexpected error",
				fmt.Sprintf("scan error: %v", r),
				domain.FailureRecommendations(domain.FailureUnexpected, s.policy, sizeMB, 0))
			if sizeMB > 0 {
				res.Details["file_size_mb"] = roundMB(sizeMB)
			}
		}
		res.ScanTime = time.Since(start)
	}()

	req.Progress.Emit("validating")

	adm, failure := s.admit(req)
	if failure != nil {
		return *failure
	}
	sizeMB = adm.sizeMB

	tool, ok := s.locator.Locate()
	if !ok {
		return domain.FailureResult(req.Path, domain.FailureToolUnavailable,
			"Scanner not available",
			"pdfid tool not found in any expected location",
			domain.FailureRecommendations(domain.FailureToolUnavailable, s.policy, adm.sizeMB, 0))
	}

	req.Progress.Emit("analyzing structure")

	run := s.runner.Run(ctx, tool, req.Path, adm.timeout, adm.sizeMB)
	if run.TimedOut {
		res := domain.FailureResult(req.Path, domain.FailureTimeout,
			"Scan timeout",
			fmt.Sprintf("scan timed out after %s - file may be too large or complex", adm.timeout),
			domain.FailureRecommendations(domain.FailureTimeout, s.policy, adm.sizeMB, adm.timeout))
		res.Details["file_size_mb"] = roundMB(adm.sizeMB)
		return res
	}
	if run.ExitCode != 0 {
		errText := run.Stderr
		if errText == "" {
			errText = "unknown error"
		}
		return domain.FailureResult(req.Path, domain.FailureProcess,
			"Scan failed",
			fmt.Sprintf("pdfid scan error: %s", errText),
			domain.FailureRecommendations(domain.FailureProcess, s.policy, adm.sizeMB, 0))
	}

	req.Progress.Emit("analyzing threats")

	counts := s.parser.Parse(run.Stdout)
	level, matched := domain.Classify(counts, s.table)
	summary := domain.Summarize(level, matched)
	recs := domain.Recommend(level, matched, adm.sizeMB, s.policy)

	details := make(map[string]int, len(counts)+2)
	for k, v := range counts {
		details[k] = v
	}
	details["file_size_mb"] = roundMB(adm.sizeMB)
	if adm.sizeMB > s.policy.WarningFileSizeMB {
		details["large_file"] = 1
	}

	return domain.ScanResult{
		FilePath:        req.Path,
		Success:         true,
		ThreatLevel:     level,
		Summary:         summary,
		Details:         details,
		Recommendations: recs,
	}
}
