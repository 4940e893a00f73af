package service

import (
	"regexp"
	"testing"

	"airjustice/models"
	"airjustice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSources_RangesAndRanking(t *testing.T) {
	svc := NewSourceService(utils.NewLockedRand(5))
	for i := 0; i < 50; i++ {
		report := svc.DetectSources(28.6, 77.2)
		require.Len(t, report.DetectedSources, 4)

		// VERY_HIGH always leads; the two HIGH sources follow by confidence
		assert.Equal(t, "INDUSTRIAL_EMISSIONS", report.DetectedSources[0].Type)
		assert.Equal(t, models.ImpactHigh, report.DetectedSources[1].Impact)
		assert.Equal(t, models.ImpactHigh, report.DetectedSources[2].Impact)
		assert.GreaterOrEqual(t, report.DetectedSources[1].Confidence, report.DetectedSources[2].Confidence)
		assert.Equal(t, "CONSTRUCTION_ACTIVITY", report.DetectedSources[3].Type)

		for _, s := range report.DetectedSources {
			switch s.Type {
			case "VEHICULAR_TRAFFIC":
				assert.True(t, s.Confidence >= 70 && s.Confidence < 95)
				assert.True(t, s.DistanceKm >= 0.5 && s.DistanceKm <= 3)
			case "INDUSTRIAL_EMISSIONS":
				assert.True(t, s.Confidence >= 60 && s.Confidence < 85)
				assert.True(t, s.DistanceKm >= 2 && s.DistanceKm <= 5)
			case "CONSTRUCTION_ACTIVITY":
				assert.True(t, s.Confidence >= 50 && s.Confidence < 80)
				assert.True(t, s.DistanceKm >= 0.3 && s.DistanceKm <= 1.5)
			case "WASTE_BURNING":
				assert.True(t, s.Confidence >= 40 && s.Confidence < 75)
				assert.True(t, s.DistanceKm >= 1 && s.DistanceKm <= 4)
			}
		}

		assert.Equal(t, 4, report.Analysis.TotalSources)
		assert.Equal(t, "INDUSTRIAL_EMISSIONS", report.Analysis.PrimarySource)
		assert.Regexp(t, regexp.MustCompile(`^(6\d|7\d|8\d)% of local pollution$`), report.Analysis.EstimatedContribution)
		assert.Equal(t, "Primary source: Industrial Emissions", report.ActionableInsights[0])
		assert.Equal(t, "Top recommendation: Install emission control devices, regular inspections", report.ActionableInsights[1])
	}
}

func TestRankSources_TiesByConfidence(t *testing.T) {
	sources := []models.PollutionSource{
		{Type: "A", Impact: models.ImpactLow, Confidence: 99},
		{Type: "B", Impact: models.ImpactHigh, Confidence: 40},
		{Type: "C", Impact: models.ImpactHigh, Confidence: 80},
		{Type: "D", Impact: models.ImpactVeryHigh, Confidence: 10},
		{Type: "E", Impact: models.ImpactMedium, Confidence: 50},
	}
	RankSources(sources)

	got := []string{}
	for _, s := range sources {
		got = append(got, s.Type)
	}
	assert.Equal(t, []string{"D", "C", "B", "E", "A"}, got)
}

func TestHumanizeSourceType(t *testing.T) {
	assert.Equal(t, "Vehicular Traffic", humanizeSourceType("VEHICULAR_TRAFFIC"))
	assert.Equal(t, "Waste Burning", humanizeSourceType("WASTE_BURNING"))
}
