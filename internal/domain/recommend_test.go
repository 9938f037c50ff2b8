package domain_test

import (
	"testing"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_NeverEmpty(t *testing.T) {
	policy := domain.DefaultPolicy()
	levels := []domain.ThreatLevel{
		domain.LevelSafe, domain.LevelLow, domain.LevelMedium,
		domain.LevelHigh, domain.LevelCritical,
	}
	for _, level := range levels {
		recs := domain.Recommend(level, 1, 2.5, policy)
		assert.NotEmpty(t, recs, "level %s should have recommendations", level)
	}
}

func TestRecommend_CriticalWarnsDoNotOpen(t *testing.T) {
	recs := domain.Recommend(domain.LevelCritical, 2, 1, domain.DefaultPolicy())
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "DO NOT OPEN")
}

func TestRecommend_InterpolatesMatchedCount(t *testing.T) {
	policy := domain.DefaultPolicy()

	assert.Contains(t, domain.Recommend(domain.LevelMedium, 3, 1, policy), "3 concerning feature(s) found")
	assert.Contains(t, domain.Recommend(domain.LevelHigh, 2, 1, policy), "2 threat indicator(s) matched")
	assert.Contains(t, domain.Recommend(domain.LevelCritical, 5, 1, policy), "5 threat indicator(s) matched")
}

func TestRecommend_AppendsSizeTierMessages(t *testing.T) {
	policy := domain.DefaultPolicy() // warning 10 MB, very large 500 MB

	small := domain.Recommend(domain.LevelSafe, 0, 5, policy)
	large := domain.Recommend(domain.LevelSafe, 0, 50, policy)
	veryLarge := domain.Recommend(domain.LevelSafe, 0, 700, policy)

	assert.Len(t, small, 2)
	require.Len(t, large, 3)
	assert.Contains(t, large[2], "Large file")
	require.Len(t, veryLarge, 3)
	assert.Contains(t, veryLarge[2], "Very large file")
}

func TestRecommend_Reproducible(t *testing.T) {
	policy := domain.DefaultPolicy()
	first := domain.Recommend(domain.LevelHigh, 2, 42, policy)
	second := domain.Recommend(domain.LevelHigh, 2, 42, policy)
	assert.Equal(t, first, second)
}

func TestFailureRecommendations_EveryKindHasGuidance(t *testing.T) {
	policy := domain.DefaultPolicy()
	kinds := []domain.FailureKind{
		domain.FailureNotFound, domain.FailureInvalidType, domain.FailureTooLarge,
		domain.FailureAccess, domain.FailureToolUnavailable, domain.FailureProcess,
		domain.FailureTimeout, domain.FailureUnexpected,
	}
	for _, kind := range kinds {
		recs := domain.FailureRecommendations(kind, policy, 10, 30*time.Second)
		assert.NotEmpty(t, recs, "kind %s should have guidance", kind)
	}
}

func TestFailureRecommendations_TooLargeNamesSizeAndLimit(t *testing.T) {
	recs := domain.FailureRecommendations(domain.FailureTooLarge, domain.DefaultPolicy(), 2000, 0)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "2000.0 MB")
	assert.Contains(t, recs[0], "1024 MB")
}

func TestFailureRecommendations_TimeoutNamesBudget(t *testing.T) {
	recs := domain.FailureRecommendations(domain.FailureTimeout, domain.DefaultPolicy(), 50, 60*time.Second)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "1m0s")
}
