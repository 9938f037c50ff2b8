package domain

import "fmt"

// Classify reduces parsed keyword counts to an aggregate threat level and
// the number of matched indicators. The reduction is a commutative maximum:
// map iteration order cannot change the outcome. Keywords with a zero count
// are not findings.
func Classify(counts map[string]int, table ThreatTable) (ThreatLevel, int) {
	level := LevelSafe
	matched := 0
	for keyword, count := range counts {
		if count <= 0 {
			continue
		}
		rule, ok := table[keyword]
		if !ok {
			continue
		}
		matched++
		if rule.Level > level {
			level = rule.Level
		}
	}
	return level, matched
}

// Summarize produces the one-line human summary for a completed scan.
func Summarize(level ThreatLevel, matched int) string {
	switch level {
	case LevelSafe:
		return "Clean - no threats detected"
	case LevelLow:
		return fmt.Sprintf("Low risk - %d minor issue(s) found", matched)
	case LevelMedium:
		return fmt.Sprintf("Medium risk - %d concerning feature(s)", matched)
	case LevelHigh:
		return fmt.Sprintf("High risk - %d dangerous feature(s)", matched)
	default:
		return fmt.Sprintf("CRITICAL - %d severe threat(s) detected", matched)
	}
}
