package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const planningTracerName = "github.com/velochron/planline/internal/service/planning"

func PlanningTracer() trace.Tracer {
	return otel.Tracer(planningTracerName)
}

func StartBuildViewSpan(ctx context.Context, startDate, endDate string) (context.Context, trace.Span) {
	return PlanningTracer().Start(ctx, "planning.build_view",
		trace.WithAttributes(
			attribute.String("view.start_date", startDate),
			attribute.String("view.end_date", endDate),
		),
	)
}

func StartLanePackSpan(ctx context.Context, day string, segmentCount int) (context.Context, trace.Span) {
	return PlanningTracer().Start(ctx, "planning.lane_pack",
		trace.WithAttributes(
			attribute.String("day", day),
			attribute.Int("segment_count", segmentCount),
		),
	)
}

func StartCoverageSpan(ctx context.Context, day string) (context.Context, trace.Span) {
	return PlanningTracer().Start(ctx, "planning.coverage",
		trace.WithAttributes(
			attribute.String("day", day),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return PlanningTracer().Start(ctx, "planning.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordBuildViewResult(span trace.Span, dayCount, segmentCount, warningDays int, err error) {
	span.SetAttributes(
		attribute.Int("view.day_count", dayCount),
		attribute.Int("view.segment_count", segmentCount),
		attribute.Int("view.warning_days", warningDays),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordLanePackResult(span trace.Span, laneCount, packedCount int) {
	span.SetAttributes(
		attribute.Int("lane.count", laneCount),
		attribute.Int("lane.packed_segments", packedCount),
	)
}
