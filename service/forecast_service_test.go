package service

import (
	"testing"
	"time"

	"airjustice/models"
	"airjustice/reference"
	"airjustice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForecastService(now time.Time, seed int64) *ForecastService {
	clock := utils.FixedClock(now)
	rng := utils.NewLockedRand(seed)
	return NewForecastService(NewAqiService(clock, rng), clock, rng)
}

func TestPredict_LengthAndBounds(t *testing.T) {
	for _, hours := range []int{1, 2, 6, DefaultForecastHours, 72} {
		f := newForecastService(testBase, int64(hours)).Predict(28.6139, 77.209, hours)

		require.Len(t, f.Predictions, hours)
		for h, p := range f.Predictions {
			assert.Equal(t, (testBase.Hour()+h)%24, p.Hour)
			assert.Equal(t, testBase.Add(time.Duration(h)*time.Hour), p.Timestamp)
			assert.GreaterOrEqual(t, p.Aqi, 50)
			assert.LessOrEqual(t, p.Aqi, 500)
			assert.GreaterOrEqual(t, p.Confidence, 0.70)
			assert.LessOrEqual(t, p.Confidence, 0.95)
			assert.Equal(t, TimeOfDayFactor(p.Hour), p.Factors.TimeOfDay)
			assert.Equal(t, "weekday", p.Factors.DayType)
		}

		assert.LessOrEqual(t, len(f.Statistics.PeakHours), MaxPeakHours)
		assert.LessOrEqual(t, f.Statistics.LowestAqi, f.Statistics.AverageAqi)
		assert.LessOrEqual(t, f.Statistics.AverageAqi, f.Statistics.PeakAqi)
		assert.GreaterOrEqual(t, f.Statistics.AverageConfidence, 0.70)
		assert.LessOrEqual(t, f.Statistics.AverageConfidence, 0.95)
		assert.Equal(t, reference.ForecastRecommendation(float64(f.Statistics.PeakAqi)).Alert, f.Recommendations.Alert)
	}
}

func TestPredict_WeekendDayFactor(t *testing.T) {
	saturday := time.Date(2025, 3, 15, 22, 0, 0, 0, time.UTC)
	f := newForecastService(saturday, 3).Predict(19.076, 72.8777, 4)
	for _, p := range f.Predictions {
		assert.Equal(t, "weekend", p.Factors.DayType)
	}
	// wraps past midnight
	assert.Equal(t, []int{22, 23, 0, 1}, []int{f.Predictions[0].Hour, f.Predictions[1].Hour, f.Predictions[2].Hour, f.Predictions[3].Hour})
}

func TestPredict_EmptyHorizon(t *testing.T) {
	f := newForecastService(testBase, 5).Predict(28.6, 77.2, 0)
	assert.Empty(t, f.Predictions)
	assert.Empty(t, f.Statistics.PeakHours)
	assert.Equal(t, 0, f.Statistics.PeakAqi)
	assert.Equal(t, "CONDITIONS MANAGEABLE", f.Recommendations.Alert)
	assert.Greater(t, f.CurrentAqi, 0)
}

func TestDayAndTimeFactors(t *testing.T) {
	factor, kind := DayFactor(testBase)
	assert.Equal(t, 1.2, factor)
	assert.Equal(t, "weekday", kind)
	factor, kind = DayFactor(testBase.AddDate(0, 0, 2))
	assert.Equal(t, 1.0, factor)
	assert.Equal(t, "weekend", kind)

	assert.Equal(t, 1.8, TimeOfDayFactor(7))
	assert.Equal(t, 1.8, TimeOfDayFactor(9))
	assert.Equal(t, 1.3, TimeOfDayFactor(10))
	assert.Equal(t, 1.3, TimeOfDayFactor(16))
	assert.Equal(t, 1.7, TimeOfDayFactor(17))
	assert.Equal(t, 1.7, TimeOfDayFactor(19))
	assert.Equal(t, 0.8, TimeOfDayFactor(20))
	assert.Equal(t, 0.8, TimeOfDayFactor(3))
}

func points(values ...int) []models.ForecastPoint {
	out := make([]models.ForecastPoint, len(values))
	for i, v := range values {
		out[i] = models.ForecastPoint{Hour: i, Aqi: v}
	}
	return out
}

func hoursOf(ps []models.ForecastPoint) []int {
	out := []int{}
	for _, p := range ps {
		out = append(out, p.Hour)
	}
	return out
}

func TestDetectPeaks(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		want   []int
	}{
		{"capped at three in index order", []int{1, 3, 2, 5, 4, 6, 5, 7, 6}, []int{1, 3, 5}},
		{"endpoints never flagged", []int{9, 1, 9}, []int{}},
		{"plateau is not strict", []int{1, 4, 4, 1}, []int{}},
		{"single interior peak", []int{100, 200, 150}, []int{1}},
		{"too short", []int{5, 9}, []int{}},
		{"empty", nil, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hoursOf(DetectPeaks(points(tc.values...), MaxPeakHours)))
		})
	}
}
