package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"airjustice/config"
	"airjustice/models"
	"airjustice/routes"
	"airjustice/service"

	"github.com/spf13/cobra"
)

// Delhi city centre
const (
	defaultLat = 28.6139
	defaultLon = 77.2090
)

func loadCoreServices() (routes.Services, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return routes.Services{}, err
	}
	services, _, err := newCoreServices(cfg)
	return services, err
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func checkCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude %v", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return fmt.Errorf("invalid longitude %v", lon)
	}
	return nil
}

func newAqiCmd() *cobra.Command {
	var lat, lon float64
	cmd := &cobra.Command{
		Use:   "aqi",
		Short: "Print a synthetic AQI sample for a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCoordinates(lat, lon); err != nil {
				return err
			}
			s, err := loadCoreServices()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.Aqi.CurrentAqi(lat, lon))
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", defaultLat, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", defaultLon, "Longitude")
	return cmd
}

func newForecastCmd() *cobra.Command {
	var lat, lon float64
	var hours int
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print an hourly AQI forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCoordinates(lat, lon); err != nil {
				return err
			}
			if hours < 1 || hours > 168 {
				return fmt.Errorf("hours must be between 1 and 168, got %d", hours)
			}
			s, err := loadCoreServices()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.Forecast.Predict(lat, lon, hours))
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", defaultLat, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", defaultLon, "Longitude")
	cmd.Flags().IntVar(&hours, "hours", service.DefaultForecastHours, "Forecast horizon in hours (1-168)")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var lat, lon, aqi float64
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an AQI value against every pollution law",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCoordinates(lat, lon); err != nil {
				return err
			}
			if math.IsNaN(aqi) || math.IsInf(aqi, 0) || aqi < 0 {
				return fmt.Errorf("invalid aqi %v", aqi)
			}
			// Pure rule evaluation: no config or randomness needed
			legal := service.NewLegalService(nil)
			return printJSON(cmd.OutOrStdout(), legal.CheckViolations(aqi, models.Location{Lat: lat, Lon: lon}))
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", defaultLat, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", defaultLon, "Longitude")
	cmd.Flags().Float64Var(&aqi, "aqi", 0, "AQI value to evaluate")
	_ = cmd.MarkFlagRequired("aqi")
	return cmd
}
