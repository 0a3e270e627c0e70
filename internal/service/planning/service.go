package planning

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/velochron/planline/internal/domain"
	"github.com/velochron/planline/internal/infra/hrviolation"
	"github.com/velochron/planline/internal/observability/metrics"
	"github.com/velochron/planline/internal/observability/tracing"
	"github.com/velochron/planline/internal/service/coverage"
	"github.com/velochron/planline/internal/service/lane"
	"github.com/velochron/planline/internal/service/timeline"
)

// Service orchestrates the read path: fetch planner data, materialize the
// day timeline, aggregate coverage, and lay out lanes. All engine calls
// are pure; this layer owns the I/O around them.
type Service struct {
	repo            domain.ScheduleRepository
	violations      hrviolation.ViolationRepository
	materializer    *timeline.Materializer
	packer          *lane.Packer
	aggregator      *coverage.Aggregator
	planningMetrics *metrics.PlanningMetrics
}

func NewService(
	repo domain.ScheduleRepository,
	violations hrviolation.ViolationRepository,
	materializer *timeline.Materializer,
	packer *lane.Packer,
	aggregator *coverage.Aggregator,
	planningMetrics *metrics.PlanningMetrics,
) *Service {
	return &Service{
		repo:            repo,
		violations:      violations,
		materializer:    materializer,
		packer:          packer,
		aggregator:      aggregator,
		planningMetrics: planningMetrics,
	}
}

// BuildView materializes the dense day view for [start, end] inclusive.
// Days without stored schedules come back as unknown days; missing
// per-day assignments and unconfigured weekdays degrade to empty
// coverage. Repository failures beyond not-found abort the build.
func (s *Service) BuildView(ctx context.Context, start, end domain.DayDate, opts ViewOptions) (*ViewResponse, error) {
	buildStart := time.Now()

	ctx, span := tracing.StartBuildViewSpan(ctx, start.String(), end.String())
	defer span.End()

	if end < start {
		err := domain.ErrInvalidRange
		tracing.RecordBuildViewResult(span, 0, 0, 0, err)
		return nil, err
	}

	// Fetch one day before the window so overnight intervals anchored
	// there contribute their spill-in head segments.
	schedules, err := s.repo.GetDaySchedulesInRange(ctx, start.Prev(), end)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch day schedules",
			slog.String("start", start.String()),
			slog.String("end", end.String()),
			slog.String("error", err.Error()),
		)
		tracing.RecordBuildViewResult(span, 0, 0, 0, err)
		return nil, err
	}

	days, err := s.materializer.Materialize(start, end, schedules)
	if err != nil {
		tracing.RecordBuildViewResult(span, 0, 0, 0, err)
		return nil, err
	}

	violationsByDay, err := s.fetchViolations(ctx, start, end)
	if err != nil {
		// Display-only data: the view is still useful without it.
		slog.WarnContext(ctx, "failed to fetch hr violations, serving view without them",
			slog.String("start", start.String()),
			slog.String("end", end.String()),
			slog.String("error", err.Error()),
		)
		violationsByDay = nil
	}

	requirementsByWeekday := make(map[int][]domain.CoverageRequirement)
	fetchedWeekdays := make(map[int]bool)

	resp := &ViewResponse{
		StartDate: start.String(),
		EndDate:   end.String(),
		Days:      make([]DayView, 0, len(days)),
	}

	for _, day := range days {
		weekday := day.Date.Weekday()
		if !fetchedWeekdays[weekday] {
			reqs, err := s.repo.GetCoverageRequirements(ctx, weekday)
			if err != nil && !errors.Is(err, domain.ErrRequirementsNotFound) {
				tracing.RecordBuildViewResult(span, 0, 0, 0, err)
				return nil, err
			}
			requirementsByWeekday[weekday] = reqs
			fetchedWeekdays[weekday] = true
		}

		assignments, err := s.repo.GetDayAssignments(ctx, day.Date)
		if err != nil && !errors.Is(err, domain.ErrDayAssignmentsNotFound) {
			tracing.RecordBuildViewResult(span, 0, 0, 0, err)
			return nil, err
		}

		var trancheAssignments []domain.TrancheAssignment
		if assignments != nil {
			trancheAssignments = assignments.Assignments
		}
		result := s.aggregator.Aggregate(requirementsByWeekday[weekday], trancheAssignments)

		view := DayView{
			Date:        day.Date.String(),
			Kind:        day.Schedule.Kind.String(),
			Description: day.Schedule.Description,
			IsOffShift:  day.Schedule.IsOffShift,
			Segments:    make([]SegmentView, 0, len(day.Segments)),
			Coverage:    coverageView(result),
			Violations:  violationsByDay[day.Date],
		}
		for _, seg := range day.Segments {
			view.Segments = append(view.Segments, segmentView(seg))
		}

		if opts.IncludeLanes {
			view.Lanes = s.packDay(ctx, day.Date, day.Segments, opts)
		}

		if result.Severity() == domain.CoverageSeverityWarning {
			resp.WarningDays++
		}
		if s.planningMetrics != nil {
			s.planningMetrics.RecordCoverageSeverity(ctx, result.Severity().String())
		}

		resp.SegmentCount += len(day.Segments)
		resp.Days = append(resp.Days, view)
	}
	resp.DayCount = len(resp.Days)

	if s.planningMetrics != nil {
		s.planningMetrics.RecordViewBuilt(ctx, resp.DayCount, resp.SegmentCount, time.Since(buildStart))
	}

	slog.InfoContext(ctx, "planning view built",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("day_count", resp.DayCount),
		slog.Int("segment_count", resp.SegmentCount),
		slog.Int("warning_days", resp.WarningDays),
	)
	tracing.RecordBuildViewResult(span, resp.DayCount, resp.SegmentCount, resp.WarningDays, nil)

	return resp, nil
}

// PackDay lane-packs a single day against a sub-window, for repaint
// requests when the UI zooms without refetching the whole view.
func (s *Service) PackDay(ctx context.Context, day domain.DayDate, opts ViewOptions) (*DayLanesResponse, error) {
	schedules, err := s.repo.GetDaySchedulesInRange(ctx, day.Prev(), day)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch day schedules for lane pack",
			slog.String("day", day.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	days, err := s.materializer.Materialize(day, day, schedules)
	if err != nil {
		return nil, err
	}

	lanes := s.packDay(ctx, day, days[0].Segments, opts)

	return &DayLanesResponse{
		Date:     day.String(),
		LaneView: *lanes,
	}, nil
}

// DayCoverage computes the coverage badge for one day.
func (s *Service) DayCoverage(ctx context.Context, day domain.DayDate) (*DayCoverageResponse, error) {
	reqs, err := s.repo.GetCoverageRequirements(ctx, day.Weekday())
	if err != nil && !errors.Is(err, domain.ErrRequirementsNotFound) {
		return nil, err
	}

	assignments, err := s.repo.GetDayAssignments(ctx, day)
	if err != nil && !errors.Is(err, domain.ErrDayAssignmentsNotFound) {
		return nil, err
	}

	var trancheAssignments []domain.TrancheAssignment
	if assignments != nil {
		trancheAssignments = assignments.Assignments
	}

	result := s.aggregator.Aggregate(reqs, trancheAssignments)

	return &DayCoverageResponse{
		Date:         day.String(),
		CoverageView: coverageView(result),
	}, nil
}

func (s *Service) packDay(ctx context.Context, day domain.DayDate, segments []domain.Segment, opts ViewOptions) *LaneView {
	ctx, span := tracing.StartLanePackSpan(ctx, day.String(), len(segments))
	defer span.End()

	packOpts := lane.Options{
		RangeStart:  opts.RangeStart,
		RangeEnd:    opts.RangeEnd,
		MinWidthPct: opts.MinWidthPct,
	}
	result := s.packer.Pack(segments, packOpts)

	rangeStart, rangeEnd := opts.RangeStart, opts.RangeEnd
	if rangeEnd <= rangeStart {
		rangeStart, rangeEnd = 0, domain.MinutesPerDay
	}

	view := &LaneView{
		RangeStart: rangeStart.Wire(),
		RangeEnd:   rangeEnd.Wire(),
		LaneCount:  result.LaneCount,
		Segments:   make([]LaneSegmentView, 0, len(result.Segments)),
	}
	for _, seg := range result.Segments {
		view.Segments = append(view.Segments, LaneSegmentView{
			SegmentView: segmentView(seg.Segment),
			Lane:        seg.Lane,
			LeftPct:     seg.LeftPct,
			WidthPct:    seg.WidthPct,
		})
	}

	tracing.RecordLanePackResult(span, result.LaneCount, len(result.Segments))
	if s.planningMetrics != nil {
		s.planningMetrics.RecordLaneCount(ctx, result.LaneCount)
	}

	return view
}

func (s *Service) fetchViolations(ctx context.Context, start, end domain.DayDate) (map[domain.DayDate][]hrviolation.ViolationRecord, error) {
	if s.violations == nil {
		return nil, nil
	}

	resp, err := s.violations.GetViolationsByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[domain.DayDate][]hrviolation.ViolationRecord, len(resp.Violations))
	for _, v := range resp.Violations {
		day := domain.DayDate(v.DayDate)
		byDay[day] = append(byDay[day], v)
	}

	return byDay, nil
}
