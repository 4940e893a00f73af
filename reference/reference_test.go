package reference

import (
	"math"
	"testing"

	"airjustice/models"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_BoundariesBelongToLowerBand(t *testing.T) {
	cases := []struct {
		aqi  float64
		want string
	}{
		{0, "Good"},
		{50, "Good"},
		{50.01, "Moderate"},
		{100, "Moderate"},
		{100.5, "Unhealthy for Sensitive"},
		{150, "Unhealthy for Sensitive"},
		{151, "Unhealthy"},
		{200, "Unhealthy"},
		{200.1, "Very Unhealthy"},
		{300, "Very Unhealthy"},
		{300.1, "Hazardous"},
		{5000, "Hazardous"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Categorize(tc.aqi).Name, "aqi=%v", tc.aqi)
	}
}

func TestCategorize_TotalPartition(t *testing.T) {
	names := map[string]bool{}
	for v := 0.0; v <= 600; v += 0.25 {
		c := Categorize(v)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Color)
		names[c.Name] = true
	}
	assert.Len(t, names, 6)
}

func TestLaws_DeclarationOrder(t *testing.T) {
	got := make([]float64, 0, len(Laws))
	for _, l := range Laws {
		got = append(got, l.Threshold)
		assert.Len(t, l.Penalties, 4)
	}
	assert.Equal(t, []float64{200, 250, 300, 25}, got)
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "Delhi", CityName(28.6139, 77.2090))
	assert.Equal(t, "Delhi", CityName(28.9, 77.5))
	assert.Equal(t, "Mumbai", CityName(19.2, 72.9))
	// tolerance is strict
	assert.Equal(t, DefaultCityName, CityName(28.6139+0.5, 77.2090))
	assert.Equal(t, DefaultCityName, CityName(0, 0))
}

func TestIsCommercialCenter(t *testing.T) {
	assert.True(t, IsCommercialCenter(28.62, 77.21))
	assert.False(t, IsCommercialCenter(28.8, 77.21))
}

func TestLifecycleLabels(t *testing.T) {
	for _, s := range models.ComplaintLifecycle {
		assert.NotEqual(t, "Status update", StatusMessage(s))
		assert.NotEqual(t, "System", StatusAuthority(s))
		assert.NotEqual(t, "Monitoring in progress", NextMilestone(s))
	}
	unknown := models.ComplaintStatus("PENDING")
	assert.Equal(t, "Status update", StatusMessage(unknown))
	assert.Equal(t, "System", StatusAuthority(unknown))
	assert.Equal(t, "Monitoring in progress", NextMilestone(unknown))

	assert.True(t, KnownAuthority("NGT Registry"))
	assert.False(t, KnownAuthority("Nobody"))
}

func TestForecastRecommendation_Tiers(t *testing.T) {
	assert.Equal(t, "HEALTH EMERGENCY PREDICTED", ForecastRecommendation(301).Alert)
	assert.Equal(t, "LEGAL VIOLATIONS PREDICTED", ForecastRecommendation(300).Alert)
	assert.Equal(t, "UNHEALTHY CONDITIONS PREDICTED", ForecastRecommendation(200).Alert)
	assert.Equal(t, "CONDITIONS MANAGEABLE", ForecastRecommendation(150).Alert)

	r := ForecastRecommendation(50)
	r.Actions[0] = "mutated"
	assert.Equal(t, "Normal activities with precautions", ForecastRecommendation(50).Actions[0])
}

func TestPollutantFractions(t *testing.T) {
	sum := 0.0
	for _, p := range Pollutants {
		sum += p.Fraction
	}
	assert.True(t, math.Abs(sum-2.31) < 1e-9)
}
