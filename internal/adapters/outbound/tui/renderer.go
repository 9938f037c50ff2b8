// Package tui renders scan results for the terminal.
package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim
	green  = lipgloss.Color("#22C55E")
	lime   = lipgloss.Color("#A3E635")
	yellow = lipgloss.Color("#F59E0B")
	orange = lipgloss.Color("#FB923C")
	red    = lipgloss.Color("#EF4444")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	levelColors = map[domain.ThreatLevel]lipgloss.Color{
		domain.LevelSafe:     green,
		domain.LevelLow:      lime,
		domain.LevelMedium:   yellow,
		domain.LevelHigh:     orange,
		domain.LevelCritical: red,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	failStyle     = lipgloss.NewStyle().Foreground(red).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func levelColor(level domain.ThreatLevel) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return dim
}

// RenderResult renders one scan result.
func RenderResult(res domain.ScanResult, table domain.ThreatTable) string {
	var b strings.Builder

	title := headerStyle.Render("pdfscan")
	name := dimStyle.Render(filepath.Base(res.FilePath))

	var verdict string
	if res.Success {
		verdict = lipgloss.NewStyle().
			Bold(true).
			Foreground(levelColor(res.ThreatLevel)).
			Render(strings.ToUpper(res.ThreatLevel.String()))
	} else {
		verdict = failStyle.Render("SCAN FAILED")
	}

	b.WriteString(boxStyle.Render(title + "\n" + name + "\n\n" + verdict))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render(res.Summary) + "\n")
	if res.ErrorMessage != "" {
		b.WriteString("  " + failStyle.Render(res.ErrorMessage) + "\n")
	}
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("scan time: %s", res.ScanTime.Round(time.Millisecond))) + "\n")

	if findings := renderFindings(res, table); findings != "" {
		b.WriteString("\n  " + titleStyle.Render("Findings") + "\n")
		b.WriteString(findings)
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Recommendations") + "\n")
		for _, rec := range res.Recommendations {
			b.WriteString("  " + dimStyle.Render("•") + " " + rec + "\n")
		}
	}

	return b.String()
}

func renderFindings(res domain.ScanResult, table domain.ThreatTable) string {
	type finding struct {
		keyword string
		count   int
		rule    domain.ThreatRule
	}
	var findings []finding
	for keyword, count := range res.Details {
		rule, ok := table[keyword]
		if !ok || count <= 0 {
			continue
		}
		findings = append(findings, finding{keyword, count, rule})
	}
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].rule.Level != findings[j].rule.Level {
			return findings[i].rule.Level > findings[j].rule.Level
		}
		return findings[i].keyword < findings[j].keyword
	})

	var b strings.Builder
	for _, f := range findings {
		tag := lipgloss.NewStyle().
			Foreground(levelColor(f.rule.Level)).
			Bold(true).
			Render(fmt.Sprintf("%-8s", f.rule.Level))
		b.WriteString(fmt.Sprintf("  %s %-14s ×%-3d %s\n",
			tag, f.keyword, f.count, dimStyle.Render(f.rule.Description)))
	}
	return b.String()
}

// RenderBatch renders the aggregate view of a batch run.
func RenderBatch(results []domain.ScanResult) string {
	var b strings.Builder

	tally := make(map[domain.ThreatLevel]int)
	failures := 0
	for _, res := range results {
		if !res.Success {
			failures++
			continue
		}
		tally[res.ThreatLevel]++
	}

	title := headerStyle.Render("pdfscan")
	subtitle := dimStyle.Render(fmt.Sprintf("%d file(s) scanned", len(results)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	levels := []domain.ThreatLevel{
		domain.LevelCritical, domain.LevelHigh, domain.LevelMedium,
		domain.LevelLow, domain.LevelSafe,
	}
	for _, level := range levels {
		if tally[level] == 0 {
			continue
		}
		styled := lipgloss.NewStyle().
			Bold(true).
			Foreground(levelColor(level)).
			Render(strings.ToUpper(level.String()))
		b.WriteString(fmt.Sprintf("  %s %d\n", styled, tally[level]))
	}
	if failures > 0 {
		b.WriteString(fmt.Sprintf("  %s %d\n", failStyle.Render("FAILED"), failures))
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	for _, res := range results {
		marker := lipgloss.NewStyle().Foreground(levelColor(res.ThreatLevel)).Render("●")
		if !res.Success {
			marker = failStyle.Render("✗")
		}
		b.WriteString(fmt.Sprintf("  %s %-40s %s\n",
			marker, filepath.Base(res.FilePath), dimStyle.Render(res.Summary)))
	}

	return b.String()
}

// RenderThreatTable lists the active rule table, strongest rules first.
func RenderThreatTable(table domain.ThreatTable) string {
	keywords := make([]string, 0, len(table))
	for k := range table {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if table[keywords[i]].Level != table[keywords[j]].Level {
			return table[keywords[i]].Level > table[keywords[j]].Level
		}
		return keywords[i] < keywords[j]
	})

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Threat rule table") + "\n\n")
	for _, keyword := range keywords {
		rule := table[keyword]
		tag := lipgloss.NewStyle().
			Foreground(levelColor(rule.Level)).
			Bold(true).
			Render(fmt.Sprintf("%-8s", rule.Level))
		b.WriteString(fmt.Sprintf("  %s %-14s %s\n", tag, keyword, dimStyle.Render(rule.Description)))
	}
	return b.String()
}
