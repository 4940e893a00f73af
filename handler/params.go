package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// MaxForecastHours bounds the requested forecast horizon
const MaxForecastHours = 168

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("lat must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("lon must be between -180 and 180")
	}
	return nil
}

// coordinates reads and validates lat/lon query params
func coordinates(r *http.Request) (float64, float64, error) {
	lat, err := floatParam(r, "lat")
	if err != nil {
		return 0, 0, err
	}
	lon, err := floatParam(r, "lon")
	if err != nil {
		return 0, 0, err
	}
	if err := validateCoordinates(lat, lon); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
