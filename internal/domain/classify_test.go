package domain_test

import (
	"testing"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_TakesMaximumSeverity(t *testing.T) {
	table := domain.DefaultThreatTable()
	counts := map[string]int{
		"/Encrypt":    1,
		"/OpenAction": 2,
		"/JS":         1,
	}

	level, matched := domain.Classify(counts, table)
	assert.Equal(t, domain.LevelCritical, level)
	assert.Equal(t, 3, matched)
}

func TestClassify_JavaScriptIsCritical(t *testing.T) {
	level, matched := domain.Classify(map[string]int{"/JS": 1}, domain.DefaultThreatTable())
	assert.Equal(t, domain.LevelCritical, level)
	assert.Equal(t, 1, matched)
}

func TestClassify_EncryptAloneIsLow(t *testing.T) {
	level, matched := domain.Classify(map[string]int{"/Encrypt": 1}, domain.DefaultThreatTable())
	assert.Equal(t, domain.LevelLow, level)
	assert.Equal(t, 1, matched)
}

func TestClassify_ZeroCountsAreNotFindings(t *testing.T) {
	counts := map[string]int{"/JS": 0, "/Launch": 0, "/AcroForm": 1}

	level, matched := domain.Classify(counts, domain.DefaultThreatTable())
	assert.Equal(t, domain.LevelLow, level)
	assert.Equal(t, 1, matched)
}

func TestClassify_UnknownKeywordsAreIgnored(t *testing.T) {
	counts := map[string]int{"obj": 12, "stream": 4, "/Page": 9}

	level, matched := domain.Classify(counts, domain.DefaultThreatTable())
	assert.Equal(t, domain.LevelSafe, level)
	assert.Equal(t, 0, matched)
}

func TestClassify_EmptyCountsAreSafe(t *testing.T) {
	level, matched := domain.Classify(map[string]int{}, domain.DefaultThreatTable())
	assert.Equal(t, domain.LevelSafe, level)
	assert.Equal(t, 0, matched)
}

// The reduction is a commutative maximum: repeated classification of the
// same counts must always agree no matter how map iteration interleaves.
func TestClassify_Deterministic(t *testing.T) {
	table := domain.DefaultThreatTable()
	counts := map[string]int{
		"/JS": 1, "/JavaScript": 2, "/AA": 1, "/OpenAction": 1,
		"/Launch": 1, "/EmbeddedFile": 3, "/XFA": 1, "/Encrypt": 1,
		"/Names": 2, "/AcroForm": 1, "obj": 40, "stream": 17,
	}

	firstLevel, firstMatched := domain.Classify(counts, table)
	for i := 0; i < 100; i++ {
		level, matched := domain.Classify(counts, table)
		assert.Equal(t, firstLevel, level)
		assert.Equal(t, firstMatched, matched)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		level   domain.ThreatLevel
		matched int
		want    string
	}{
		{domain.LevelSafe, 0, "Clean - no threats detected"},
		{domain.LevelLow, 2, "Low risk - 2 minor issue(s) found"},
		{domain.LevelMedium, 1, "Medium risk - 1 concerning feature(s)"},
		{domain.LevelHigh, 3, "High risk - 3 dangerous feature(s)"},
		{domain.LevelCritical, 4, "CRITICAL - 4 severe threat(s) detected"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Summarize(tt.level, tt.matched))
	}
}
