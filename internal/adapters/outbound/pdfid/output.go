// Package pdfid adapts the external pdfid analysis tool: locating it on the
// host, running it as a child process, and parsing its report.
package pdfid

import (
	"strconv"
	"strings"
)

// headerLines is the length of the banner pdfid prints before keyword rows.
const headerLines = 2

// Parser implements application.OutputParser over ParseOutput.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (*Parser) Parse(stdout string) map[string]int {
	return ParseOutput(stdout)
}

// ParseOutput converts raw pdfid stdout into keyword counts. Each content
// line is `KEYWORD<whitespace>COUNT`; anything else is silently skipped so a
// malformed line can never abort a scan. Negative counts are skipped too:
// a count below zero is tool noise, not a finding.
func ParseOutput(stdout string) map[string]int {
	lines := strings.Split(stdout, "\n")
	if len(lines) > headerLines {
		lines = lines[headerLines:]
	} else {
		lines = nil
	}

	counts := make(map[string]int)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 0 {
			continue
		}
		counts[fields[0]] = count
	}
	return counts
}
