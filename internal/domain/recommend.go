package domain

import (
	"fmt"
	"time"
)

// Recommend synthesizes the ordered guidance list for a successful scan.
// It is a pure function of the aggregate level, the matched-indicator count,
// the file size and the policy size tiers.
func Recommend(level ThreatLevel, matched int, sizeMB float64, policy Policy) []string {
	recs := baseline(level, matched)
	if sizeMB > policy.VeryLargeFileSizeMB {
		recs = append(recs, fmt.Sprintf("Very large file (%.1f MB) - ensure sufficient system resources before opening", sizeMB))
	} else if sizeMB > policy.WarningFileSizeMB {
		recs = append(recs, fmt.Sprintf("Large file (%.1f MB) - scans and viewers may need extra time and memory", sizeMB))
	}
	return recs
}

func baseline(level ThreatLevel, matched int) []string {
	switch level {
	case LevelCritical:
		return []string{
			"CRITICAL THREAT DETECTED - DO NOT OPEN",
			"This PDF contains dangerous executable code",
			"Open only inside an isolated or sandboxed environment",
			"Treat this file as potentially malicious",
			fmt.Sprintf("%d threat indicator(s) matched", matched),
		}
	case LevelHigh:
		return []string{
			"HIGH RISK - exercise extreme caution",
			"Disable JavaScript in your PDF viewer",
			"Scan with updated antivirus software",
			"Do not accept any prompts or dialogs the document raises",
			fmt.Sprintf("%d threat indicator(s) matched", matched),
		}
	case LevelMedium:
		return []string{
			"Medium risk features detected",
			"Review embedded content before opening",
			"Use an updated PDF viewer with security features enabled",
			fmt.Sprintf("%d concerning feature(s) found", matched),
		}
	case LevelLow:
		return []string{
			"Low risk features present",
			"File appears relatively safe",
			"Standard PDF viewer precautions apply",
		}
	default:
		return []string{
			"No obvious threats detected",
			"File appears clean and safe to open",
		}
	}
}

// FailureRecommendations returns the advisory guidance for each failure
// category. sizeMB and timeout feed the categories that name concrete
// figures; the others ignore them.
func FailureRecommendations(kind FailureKind, policy Policy, sizeMB float64, timeout time.Duration) []string {
	switch kind {
	case FailureNotFound:
		return []string{
			"Check that the file path is correct",
			"The file may have been moved or deleted",
		}
	case FailureInvalidType:
		return []string{
			"Only PDF documents can be scanned",
			"Verify the file is actually a PDF and has a .pdf extension",
		}
	case FailureTooLarge:
		return []string{
			fmt.Sprintf("File size %.1f MB exceeds the configured limit of %.0f MB", sizeMB, policy.MaxFileSizeMB),
			fmt.Sprintf("Try a smaller PDF file (under %.0f MB)", policy.MaxFileSizeMB),
			"Large files may contain complex threats requiring specialized tools",
			"Consider splitting the PDF into smaller chunks",
		}
	case FailureAccess:
		return []string{
			"Check file permissions",
			"Ensure the file is not locked by another program",
		}
	case FailureToolUnavailable:
		return []string{
			"Install the pdfid analysis tool",
			"Set tool_path in .pdfscan.yaml or the PDFSCAN_PDFID environment variable",
		}
	case FailureProcess:
		return []string{
			"PDF file may be corrupted or encrypted",
			"Try with a different PDF file",
			"Check if the file is password protected",
		}
	case FailureTimeout:
		return []string{
			fmt.Sprintf("Scan timed out after %s", timeout),
			"File may be too large or complex",
			"Try a smaller PDF file for faster processing",
			"Very large documents may require specialized tooling",
		}
	default:
		return []string{
			"An unexpected error occurred during scanning",
			"Try with a different PDF file",
			"Ensure the file is not corrupted",
		}
	}
}
