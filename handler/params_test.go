package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinates(t *testing.T) {
	lat, lon, err := coordinates(httptest.NewRequest("GET", "/aqi?lat=-33.86&lon=151.2", nil))
	require.NoError(t, err)
	assert.Equal(t, -33.86, lat)
	assert.Equal(t, 151.2, lon)

	_, _, err = coordinates(httptest.NewRequest("GET", "/aqi?lat=10", nil))
	assert.EqualError(t, err, "lon is required")

	_, _, err = coordinates(httptest.NewRequest("GET", "/aqi?lat=10&lon=181", nil))
	assert.EqualError(t, err, "lon must be between -180 and 180")

	_, _, err = coordinates(httptest.NewRequest("GET", "/aqi?lat=Inf&lon=1", nil))
	assert.EqualError(t, err, "lat must be a number")
}

func TestIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/aqi/predict?hours=12", nil)
	v, err := intParam(r, "hours", 24)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	v, err = intParam(httptest.NewRequest("GET", "/aqi/predict", nil), "hours", 24)
	require.NoError(t, err)
	assert.Equal(t, 24, v)

	_, err = intParam(httptest.NewRequest("GET", "/aqi/predict?hours=1.5", nil), "hours", 24)
	assert.Error(t, err)
}
