package service

import (
	"math"
	"time"

	"airjustice/metrics"
	"airjustice/models"
	"airjustice/reference"
	"airjustice/utils"
)

const (
	// DefaultForecastHours is the horizon used when the caller gives none
	DefaultForecastHours = 24
	// MaxPeakHours caps how many local maxima are reported
	MaxPeakHours = 3

	MinForecastAqi = 50.0
	MaxForecastAqi = 500.0

	MinConfidence = 0.7
	MaxConfidence = 0.95
)

const (
	dayTypeWeekday = "weekday"
	dayTypeWeekend = "weekend"
)

// ForecastService extends a fresh current reading over an hourly horizon
type ForecastService struct {
	aqi   *AqiService
	clock utils.Clock
	rng   utils.RandomSource
}

// NewForecastService creates a new forecast service
func NewForecastService(aqi *AqiService, clock utils.Clock, rng utils.RandomSource) *ForecastService {
	return &ForecastService{aqi: aqi, clock: clock, rng: rng}
}

// TimeOfDayFactor is the commute/daytime multiplier for an hour of day
func TimeOfDayFactor(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 9:
		return 1.8
	case hour >= 17 && hour <= 19:
		return 1.7
	case hour >= 10 && hour <= 16:
		return 1.3
	default:
		return 0.8
	}
}

// DayFactor returns the weekday/weekend multiplier for t's calendar day
func DayFactor(t time.Time) (float64, string) {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return 1.0, dayTypeWeekend
	default:
		return 1.2, dayTypeWeekday
	}
}

// Predict builds an hourly forecast of the given length starting at the current hour.
// hours <= 0 yields an empty series; callers are expected to reject it first.
func (s *ForecastService) Predict(lat, lon float64, hours int) *models.Forecast {
	current := s.aqi.CurrentAqi(lat, lon)
	currentAqi := float64(current.Aqi.Value)

	now := s.clock()
	dayFactor, dayType := DayFactor(now)

	if hours < 0 {
		hours = 0
	}
	points := make([]models.ForecastPoint, 0, hours)
	confidenceSum := 0.0

	for h := 0; h < hours; h++ {
		hourOfDay := (now.Hour() + h) % 24
		timeFactor := TimeOfDayFactor(hourOfDay)
		weather := 1.0 + s.rng.NormFloat64()*0.15

		predicted := utils.Clamp(currentAqi*timeFactor*dayFactor*weather, MinForecastAqi, MaxForecastAqi)

		confidence := 0.9 - float64(h)*0.02 + s.rng.NormFloat64()*0.05
		confidence = utils.Clamp(confidence, MinConfidence, MaxConfidence)
		confidenceSum += confidence

		points = append(points, models.ForecastPoint{
			Hour:       hourOfDay,
			Timestamp:  now.Add(time.Duration(h) * time.Hour),
			Aqi:        int(math.Round(predicted)),
			Category:   reference.Categorize(predicted).Name,
			Confidence: utils.Round(confidence, 2),
			Factors: models.ForecastFactors{
				TimeOfDay:     utils.Round(timeFactor, 2),
				DayType:       dayType,
				WeatherImpact: utils.Round(weather, 2),
			},
		})
	}

	metrics.ForecastsServed.Inc()

	return &models.Forecast{
		CurrentAqi:      current.Aqi.Value,
		Predictions:     points,
		Statistics:      forecastStatistics(points, confidenceSum),
		Recommendations: reference.ForecastRecommendation(float64(peakAqi(points))),
	}
}

// DetectPeaks returns up to limit strict local maxima in index order.
// The first and last points are never peaks.
func DetectPeaks(points []models.ForecastPoint, limit int) []models.ForecastPoint {
	peaks := []models.ForecastPoint{}
	for i := 1; i < len(points)-1 && len(peaks) < limit; i++ {
		if points[i].Aqi > points[i-1].Aqi && points[i].Aqi > points[i+1].Aqi {
			peaks = append(peaks, points[i])
		}
	}
	return peaks
}

func forecastStatistics(points []models.ForecastPoint, confidenceSum float64) models.ForecastStatistics {
	stats := models.ForecastStatistics{PeakHours: DetectPeaks(points, MaxPeakHours)}
	if len(points) == 0 {
		return stats
	}

	sum := 0
	stats.PeakAqi = points[0].Aqi
	stats.LowestAqi = points[0].Aqi
	for _, p := range points {
		sum += p.Aqi
		if p.Aqi > stats.PeakAqi {
			stats.PeakAqi = p.Aqi
		}
		if p.Aqi < stats.LowestAqi {
			stats.LowestAqi = p.Aqi
		}
	}
	n := float64(len(points))
	stats.AverageAqi = int(math.Round(float64(sum) / n))
	stats.AverageConfidence = utils.Round(confidenceSum/n, 2)
	return stats
}

func peakAqi(points []models.ForecastPoint) int {
	peak := 0
	for _, p := range points {
		if p.Aqi > peak {
			peak = p.Aqi
		}
	}
	return peak
}
