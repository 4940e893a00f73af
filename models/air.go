package models

import "time"

// Location is a WGS84 coordinate
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Category is a named AQI severity band
type Category struct {
	Name               string `json:"name"`
	Color              string `json:"color"`
	HealthImplications string `json:"health_implications"`
}

// PollutantReading is one entry of the pollutant breakdown
type PollutantReading struct {
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	Source       string  `json:"source"`
	HealthEffect string  `json:"health_effect"`
}

// PlaceInfo describes the resolved location of a reading
type PlaceInfo struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	City string  `json:"city"`
	Zone string  `json:"zone"`
}

// AqiValue is the headline index with its category
type AqiValue struct {
	Value              int    `json:"value"`
	Category           string `json:"category"`
	Color              string `json:"color"`
	HealthImplications string `json:"health_implications"`
}

// Measurement describes how a sample was produced
type Measurement struct {
	Method     string `json:"method"`
	Accuracy   string `json:"accuracy"`
	NextUpdate string `json:"next_update"`
}

// AqiSample is a synthesized current reading. Immutable once produced.
// RawValue is the clamped, unrounded index the pollutant fractions are taken from.
type AqiSample struct {
	Location    PlaceInfo                   `json:"location"`
	Aqi         AqiValue                    `json:"aqi"`
	Pollutants  map[string]PollutantReading `json:"pollutants"`
	Timestamp   time.Time                   `json:"timestamp"`
	Measurement Measurement                 `json:"measurement"`
	RawValue    float64                     `json:"-"`
}

// ForecastFactors is the contributing-factor breakdown of one prediction
type ForecastFactors struct {
	TimeOfDay     float64 `json:"time_of_day"`
	DayType       string  `json:"day_type"`
	WeatherImpact float64 `json:"weather_impact"`
}

// ForecastPoint is one hourly prediction
type ForecastPoint struct {
	Hour       int             `json:"hour"`
	Timestamp  time.Time       `json:"timestamp"`
	Aqi        int             `json:"aqi"`
	Category   string          `json:"category"`
	Confidence float64         `json:"confidence"`
	Factors    ForecastFactors `json:"factors"`
}

// ForecastStatistics aggregates a forecast series
type ForecastStatistics struct {
	AverageAqi        int             `json:"average_aqi"`
	PeakAqi           int             `json:"peak_aqi"`
	LowestAqi         int             `json:"lowest_aqi"`
	AverageConfidence float64         `json:"average_confidence"`
	PeakHours         []ForecastPoint `json:"peak_hours"`
}

// Recommendation is a tiered alert with its action list
type Recommendation struct {
	Alert   string   `json:"alert"`
	Actions []string `json:"actions"`
}

// Forecast is an ordered hourly series plus aggregates
type Forecast struct {
	CurrentAqi      int                `json:"current_aqi"`
	Predictions     []ForecastPoint    `json:"predictions"`
	Statistics      ForecastStatistics `json:"statistics"`
	Recommendations Recommendation     `json:"recommendations"`
}
