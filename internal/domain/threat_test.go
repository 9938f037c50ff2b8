package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreatLevelOrdering(t *testing.T) {
	assert.True(t, domain.LevelSafe < domain.LevelLow)
	assert.True(t, domain.LevelLow < domain.LevelMedium)
	assert.True(t, domain.LevelMedium < domain.LevelHigh)
	assert.True(t, domain.LevelHigh < domain.LevelCritical)
}

func TestThreatLevelString(t *testing.T) {
	assert.Equal(t, "safe", domain.LevelSafe.String())
	assert.Equal(t, "critical", domain.LevelCritical.String())
	assert.Equal(t, "unknown", domain.ThreatLevel(99).String())
}

func TestParseThreatLevel(t *testing.T) {
	for _, name := range []string{"safe", "low", "medium", "high", "critical"} {
		level, err := domain.ParseThreatLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}

	_, err := domain.ParseThreatLevel("severe")
	assert.Error(t, err)
}

func TestThreatLevelJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(domain.LevelHigh)
	require.NoError(t, err)
	assert.Equal(t, `"high"`, string(data))

	var level domain.ThreatLevel
	require.NoError(t, json.Unmarshal(data, &level))
	assert.Equal(t, domain.LevelHigh, level)
}

func TestDefaultThreatTable(t *testing.T) {
	table := domain.DefaultThreatTable()

	assert.Equal(t, domain.LevelCritical, table["/JS"].Level)
	assert.Equal(t, domain.LevelCritical, table["/JavaScript"].Level)
	assert.Equal(t, domain.LevelHigh, table["/OpenAction"].Level)
	assert.Equal(t, domain.LevelHigh, table["/Launch"].Level)
	assert.Equal(t, domain.LevelMedium, table["/EmbeddedFile"].Level)
	assert.Equal(t, domain.LevelLow, table["/Encrypt"].Level)

	for keyword, rule := range table {
		assert.NotEmpty(t, rule.Description, "rule %s should carry a description", keyword)
	}
}

func TestThreatTableMerge(t *testing.T) {
	base := domain.DefaultThreatTable()
	merged := base.Merge(map[string]domain.ThreatRule{
		"/Encrypt": {Level: domain.LevelMedium, Description: "raised by policy"},
		"/Custom":  {Level: domain.LevelHigh, Description: "site-specific marker"},
	})

	assert.Equal(t, domain.LevelMedium, merged["/Encrypt"].Level)
	assert.Equal(t, domain.LevelHigh, merged["/Custom"].Level)
	// Base table is untouched.
	assert.Equal(t, domain.LevelLow, base["/Encrypt"].Level)
	_, exists := base["/Custom"]
	assert.False(t, exists)
}
