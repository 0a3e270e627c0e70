package config

import (
	"os"
	"strconv"
)

const (
	defaultViewDaysEnv    = "PLANNING_DEFAULT_VIEW_DAYS"
	maxRangeDaysEnv       = "PLANNING_MAX_RANGE_DAYS"
	minLaneWidthPctEnv    = "PLANNING_MIN_LANE_WIDTH_PCT"
	coverageAlertsEnabled = "COVERAGE_ALERTS_ENABLED"

	defaultViewDays     = 7
	defaultMaxRangeDays = 92
)

type PlanningConfig struct {
	DefaultViewDays int
	MaxRangeDays    int
	MinLaneWidthPct float64
	AlertsEnabled   bool
}

func LoadPlanningConfig() *PlanningConfig {
	viewDays := defaultViewDays
	if v := os.Getenv(defaultViewDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			viewDays = parsed
		}
	}

	maxRange := defaultMaxRangeDays
	if v := os.Getenv(maxRangeDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRange = parsed
		}
	}

	// Zero means the lane packer default; negative disables filtering.
	minWidth := 0.0
	if v := os.Getenv(minLaneWidthPctEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			minWidth = parsed
		}
	}

	alerts := os.Getenv(coverageAlertsEnabled) == "true"

	return &PlanningConfig{
		DefaultViewDays: viewDays,
		MaxRangeDays:    maxRange,
		MinLaneWidthPct: minWidth,
		AlertsEnabled:   alerts,
	}
}
