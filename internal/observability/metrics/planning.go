package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const planningMeterName = "planline.planning"

type PlanningMetrics struct {
	viewsBuilt        metric.Int64Counter
	daysMaterialized  metric.Int64Counter
	segmentsPacked    metric.Int64Counter
	laneCount         metric.Int64Histogram
	coverageSeverity  metric.Int64Counter
	viewBuildDuration metric.Float64Histogram
}

func NewPlanningMetrics() (*PlanningMetrics, error) {
	meter := otel.Meter(planningMeterName)

	viewsBuilt, err := meter.Int64Counter(
		"planning_views_built_total",
		metric.WithDescription("Total number of planning views built"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, err
	}

	daysMaterialized, err := meter.Int64Counter(
		"planning_days_materialized_total",
		metric.WithDescription("Total number of calendar days materialized into views"),
		metric.WithUnit("{day}"),
	)
	if err != nil {
		return nil, err
	}

	segmentsPacked, err := meter.Int64Counter(
		"planning_segments_packed_total",
		metric.WithDescription("Total number of segments laid out into lanes"),
		metric.WithUnit("{segment}"),
	)
	if err != nil {
		return nil, err
	}

	laneCount, err := meter.Int64Histogram(
		"planning_lane_count",
		metric.WithDescription("Lanes needed per packed day"),
		metric.WithUnit("{lane}"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4, 5, 8, 12, 20),
	)
	if err != nil {
		return nil, err
	}

	coverageSeverity, err := meter.Int64Counter(
		"planning_coverage_severity_total",
		metric.WithDescription("Coverage severity of served days"),
		metric.WithUnit("{day}"),
	)
	if err != nil {
		return nil, err
	}

	viewBuildDuration, err := meter.Float64Histogram(
		"planning_view_build_duration_seconds",
		metric.WithDescription("Time spent building a planning view"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
		),
	)
	if err != nil {
		return nil, err
	}

	return &PlanningMetrics{
		viewsBuilt:        viewsBuilt,
		daysMaterialized:  daysMaterialized,
		segmentsPacked:    segmentsPacked,
		laneCount:         laneCount,
		coverageSeverity:  coverageSeverity,
		viewBuildDuration: viewBuildDuration,
	}, nil
}

func (m *PlanningMetrics) RecordViewBuilt(ctx context.Context, dayCount, segmentCount int, duration time.Duration) {
	m.viewsBuilt.Add(ctx, 1)
	m.daysMaterialized.Add(ctx, int64(dayCount))
	m.segmentsPacked.Add(ctx, int64(segmentCount))
	m.viewBuildDuration.Record(ctx, duration.Seconds())
}

func (m *PlanningMetrics) RecordLaneCount(ctx context.Context, laneCount int) {
	m.laneCount.Record(ctx, int64(laneCount))
}

func (m *PlanningMetrics) RecordCoverageSeverity(ctx context.Context, severity string) {
	m.coverageSeverity.Add(ctx, 1, metric.WithAttributes(
		attribute.String("severity", severity),
	))
}
