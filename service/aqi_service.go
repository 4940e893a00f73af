package service

import (
	"fmt"
	"math"

	"airjustice/models"
	"airjustice/reference"
	"airjustice/utils"
)

// Bounds of a synthesized current reading
const (
	MinCurrentAqi = 50.0
	MaxCurrentAqi = 450.0
)

const (
	measurementMethod     = "AI-predicted based on patterns"
	measurementNextUpdate = "5 minutes"
)

// AqiService synthesizes a plausible current reading for a coordinate.
// All randomness comes from the injected source so readings are reproducible under a fixed seed.
type AqiService struct {
	clock utils.Clock
	rng   utils.RandomSource
}

// NewAqiService creates a new AQI service
func NewAqiService(clock utils.Clock, rng utils.RandomSource) *AqiService {
	return &AqiService{clock: clock, rng: rng}
}

// BaseAqi is the location term: 150 + (|lat| mod 10)*10 + (|lon| mod 10)*5
func BaseAqi(lat, lon float64) float64 {
	return 150 + math.Mod(math.Abs(lat), 10)*10 + math.Mod(math.Abs(lon), 10)*5
}

// DiurnalFactor is the sinusoidal hour-of-day multiplier in [0.7, 1.3]
func DiurnalFactor(hour int) float64 {
	return math.Sin(2*math.Pi*float64(hour)/24)*0.3 + 1.0
}

// PeakPeriodFactor boosts the morning and evening rush and the afternoon
func PeakPeriodFactor(hour int) float64 {
	switch {
	case hour >= 8 && hour <= 10:
		return 1.8
	case hour >= 18 && hour <= 20:
		return 1.6
	case hour >= 12 && hour <= 16:
		return 1.2
	default:
		return 0.9
	}
}

// CurrentAqi produces the reading for (lat, lon) at the clock's current instant.
// Never fails; the value is clamped to [50, 450].
func (s *AqiService) CurrentAqi(lat, lon float64) *models.AqiSample {
	now := s.clock()
	hour := now.Hour()

	weather := 1.0 + s.rng.NormFloat64()*0.1
	raw := BaseAqi(lat, lon) * PeakPeriodFactor(hour) * weather * DiurnalFactor(hour)
	raw = utils.Clamp(raw, MinCurrentAqi, MaxCurrentAqi)

	category := reference.Categorize(raw)

	return &models.AqiSample{
		Location: models.PlaceInfo{
			Lat:  lat,
			Lon:  lon,
			City: reference.CityName(lat, lon),
			Zone: s.zoneType(lat, lon),
		},
		Aqi: models.AqiValue{
			Value:              int(math.Round(raw)),
			Category:           category.Name,
			Color:              category.Color,
			HealthImplications: category.HealthImplications,
		},
		Pollutants: PollutantBreakdown(raw),
		Timestamp:  now,
		Measurement: models.Measurement{
			Method:     measurementMethod,
			Accuracy:   fmt.Sprintf("%d%%", utils.IntRange(s.rng, 85, 95)),
			NextUpdate: measurementNextUpdate,
		},
		RawValue: raw,
	}
}

// PollutantBreakdown derives each pollutant as a fixed fraction of the index
func PollutantBreakdown(aqi float64) map[string]models.PollutantReading {
	out := make(map[string]models.PollutantReading, len(reference.Pollutants))
	for _, p := range reference.Pollutants {
		out[p.Key] = models.PollutantReading{
			Value:        utils.Round(aqi*p.Fraction, p.Places),
			Unit:         p.Unit,
			Source:       p.Source,
			HealthEffect: p.HealthEffect,
		}
	}
	return out
}

func (s *AqiService) zoneType(lat, lon float64) string {
	if reference.IsCommercialCenter(lat, lon) {
		return reference.ZoneCommercialCenter
	}
	if s.rng.Float64() > 0.5 {
		return reference.ZoneResidential
	}
	return reference.ZoneMixedUse
}
