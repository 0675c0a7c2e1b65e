package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/passplan/internal/visibility"
	"github.com/signalsfoundry/passplan/model"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict visibility passes from a TLE",
	Long:  "Propagate a satellite TLE over a planning horizon and print the predicted contact windows for one ground station as JSON.",
	RunE:  runPredict,
}

var (
	predictTLEPath  string
	predictSatID    int64
	predictStart    string
	predictHorizon  time.Duration
	predictStep     time.Duration
	predictLat      float64
	predictLon      float64
	predictAlt      float64
	predictMinElev  float64
	predictStation  string
)

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringVar(&predictTLEPath, "tle", "", "path to a TLE file: optional name line plus two element lines (required)")
	predictCmd.Flags().Int64Var(&predictSatID, "sat-id", 1, "satellite ID stamped on predicted passes")
	predictCmd.Flags().StringVar(&predictStart, "start", "", "horizon start, RFC 3339 (default: now)")
	predictCmd.Flags().DurationVar(&predictHorizon, "horizon", 24*time.Hour, "planning horizon length")
	predictCmd.Flags().DurationVar(&predictStep, "step", visibility.DefaultStep, "propagation sampling step")
	predictCmd.Flags().Float64Var(&predictLat, "lat", 0, "station latitude in degrees")
	predictCmd.Flags().Float64Var(&predictLon, "lon", 0, "station longitude in degrees")
	predictCmd.Flags().Float64Var(&predictAlt, "alt", 0, "station altitude in metres")
	predictCmd.Flags().Float64Var(&predictMinElev, "min-elevation", 0, "station tracking mask in degrees (0 uses the default)")
	predictCmd.Flags().StringVar(&predictStation, "station", "station", "station name for the output")
	predictCmd.MarkFlagRequired("tle")
}

type predictedPass struct {
	SatelliteID     int64   `json:"satellite_id"`
	Station         string  `json:"station"`
	AOS             string  `json:"aos"`
	LOS             string  `json:"los"`
	MaxElevationDeg float64 `json:"max_elevation_deg"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func runPredict(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	sat, err := readTLE(predictTLEPath, predictSatID)
	if err != nil {
		return err
	}

	start := time.Now().UTC()
	if predictStart != "" {
		start, err = time.Parse(time.RFC3339, predictStart)
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
	}

	station := model.GroundStation{
		ID:              1,
		Name:            predictStation,
		LatitudeDeg:     predictLat,
		LongitudeDeg:    predictLon,
		AltitudeM:       predictAlt,
		MinElevationDeg: predictMinElev,
		CostPerMinute:   model.DefaultCostPerMinute,
	}

	predictor := visibility.NewPredictor(predictStep, logger)
	passes, err := predictor.Plan(context.Background(), []visibility.Satellite{sat}, []model.GroundStation{station}, start, start.Add(predictHorizon))
	if err != nil {
		return err
	}

	out := make([]predictedPass, 0, len(passes))
	for _, p := range passes {
		out = append(out, predictedPass{
			SatelliteID:     p.SatelliteID,
			Station:         station.Name,
			AOS:             p.AOS.Format(time.RFC3339),
			LOS:             p.LOS.Format(time.RFC3339),
			MaxElevationDeg: p.MaxElevationDeg,
			DurationSeconds: p.DurationSeconds,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// readTLE parses a two- or three-line element file. A three-line file
// carries the satellite name on the first line.
func readTLE(path string, id int64) (visibility.Satellite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return visibility.Satellite{}, fmt.Errorf("read TLE %q: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	sat := visibility.Satellite{ID: id}
	switch len(lines) {
	case 2:
		sat.TLELine1, sat.TLELine2 = lines[0], lines[1]
	case 3:
		sat.Name, sat.TLELine1, sat.TLELine2 = lines[0], lines[1], lines[2]
	default:
		return visibility.Satellite{}, fmt.Errorf("TLE file %q has %d non-empty lines, want 2 or 3", path, len(lines))
	}
	return sat, nil
}
