package planning

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/velochron/planline/internal/domain"
	"github.com/velochron/planline/internal/infra/hrviolation"
	"github.com/velochron/planline/internal/service/coverage"
	"github.com/velochron/planline/internal/service/lane"
	"github.com/velochron/planline/internal/service/segment"
	"github.com/velochron/planline/internal/service/timeline"
)

func newTestService(repo domain.ScheduleRepository, violations hrviolation.ViolationRepository) *Service {
	materializer := timeline.NewMaterializer(segment.NewSplitter())
	return NewService(repo, violations, materializer, lane.NewPacker(), coverage.NewAggregator(), nil)
}

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	v, err := domain.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return v
}

func expectNoCoverage(repo *domain.MockScheduleRepository) {
	repo.EXPECT().
		GetCoverageRequirements(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRequirementsNotFound).
		AnyTimes()
	repo.EXPECT().
		GetDayAssignments(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDayAssignmentsNotFound).
		AnyTimes()
}

func TestBuildView_DenseWindowWithOvernight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	start := domain.DayDate("2025-03-10")
	end := domain.DayDate("2025-03-12")

	schedules := map[domain.DayDate]*domain.DaySchedule{
		"2025-03-10": {
			Day:  "2025-03-10",
			Kind: domain.DayKindWorking,
			Tranches: []domain.RawInterval{
				{SourceID: 7, Label: "night", Start: mustTime(t, "22:00"), End: mustTime(t, "06:00")},
			},
		},
	}

	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), domain.DayDate("2025-03-09"), end).
		Return(schedules, nil)
	expectNoCoverage(mockRepo)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.BuildView(context.Background(), start, end, ViewOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.DayCount != 3 {
		t.Fatalf("DayCount: got %d, want 3", resp.DayCount)
	}
	if resp.SegmentCount != 2 {
		t.Errorf("SegmentCount: got %d, want 2", resp.SegmentCount)
	}

	day0 := resp.Days[0]
	if day0.Date != "2025-03-10" || day0.Kind != "working" {
		t.Errorf("day 0: got %s/%s, want 2025-03-10/working", day0.Date, day0.Kind)
	}
	if len(day0.Segments) != 1 {
		t.Fatalf("day 0 segments: got %d, want 1", len(day0.Segments))
	}
	tail := day0.Segments[0]
	if tail.Start != "22:00:00" || tail.End != "24:00:00" || !tail.ContinuesNext {
		t.Errorf("tail segment: got %s-%s continuesNext=%v", tail.Start, tail.End, tail.ContinuesNext)
	}

	day1 := resp.Days[1]
	if day1.Kind != "unknown" {
		t.Errorf("day 1 kind: got %s, want unknown", day1.Kind)
	}
	if len(day1.Segments) != 1 {
		t.Fatalf("day 1 segments: got %d, want 1", len(day1.Segments))
	}
	head := day1.Segments[0]
	if head.Start != "00:00:00" || head.End != "06:00:00" || !head.ContinuesPrev {
		t.Errorf("head segment: got %s-%s continuesPrev=%v", head.Start, head.End, head.ContinuesPrev)
	}

	if len(resp.Days[2].Segments) != 0 {
		t.Errorf("day 2 segments: got %d, want 0", len(resp.Days[2].Segments))
	}
}

func TestBuildView_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	svc := newTestService(mockRepo, nil)

	resp, err := svc.BuildView(context.Background(), "2025-03-12", "2025-03-10", ViewOptions{})
	if !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if resp != nil {
		t.Errorf("expected nil response, got %+v", resp)
	}
}

func TestBuildView_CoverageWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	day := domain.DayDate("2025-03-10")

	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), day.Prev(), day).
		Return(map[domain.DayDate]*domain.DaySchedule{}, nil)
	mockRepo.EXPECT().
		GetCoverageRequirements(gomock.Any(), day.Weekday()).
		Return([]domain.CoverageRequirement{
			{Weekday: day.Weekday(), TrancheID: 1, RequiredCount: 2},
		}, nil)
	mockRepo.EXPECT().
		GetDayAssignments(gomock.Any(), day).
		Return(&domain.DayAssignments{
			Day: day,
			Assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{101}},
			},
		}, nil)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.BuildView(context.Background(), day, day, ViewOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cov := resp.Days[0].Coverage
	if cov.Severity != "warning" {
		t.Errorf("severity: got %s, want warning", cov.Severity)
	}
	if cov.TotalTranches != 1 || cov.CoveredTranches != 0 || cov.MissingTranches != 1 {
		t.Errorf("tranche counts: got total=%d covered=%d missing=%d, want 1/0/1",
			cov.TotalTranches, cov.CoveredTranches, cov.MissingTranches)
	}
	if cov.RequiredAgents != 2 || cov.AssignedAgents != 1 {
		t.Errorf("headcounts: got required=%d assigned=%d, want 2/1", cov.RequiredAgents, cov.AssignedAgents)
	}
	if resp.WarningDays != 1 {
		t.Errorf("WarningDays: got %d, want 1", resp.WarningDays)
	}
}

func TestBuildView_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	expectedErr := errors.New("connection refused")
	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.BuildView(context.Background(), "2025-03-10", "2025-03-10", ViewOptions{})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if resp != nil {
		t.Errorf("expected nil response, got %+v", resp)
	}
}

func TestBuildView_ViolationsAttached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockViolations := hrviolation.NewMockViolationRepository(ctrl)

	day := domain.DayDate("2025-03-10")

	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.DayDate]*domain.DaySchedule{}, nil)
	expectNoCoverage(mockRepo)

	mockViolations.EXPECT().
		GetViolationsByDateRange(gomock.Any(), day, day).
		Return(&hrviolation.ViolationsResponse{
			Violations: []hrviolation.ViolationRecord{
				{ID: "v-1", DayDate: "2025-03-10", RuleCode: "REST_11H", Severity: "high", Message: "rest period too short"},
			},
			Count: 1,
		}, nil)

	svc := newTestService(mockRepo, mockViolations)

	resp, err := svc.BuildView(context.Background(), day, day, ViewOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Days[0].Violations) != 1 {
		t.Fatalf("violations: got %d, want 1", len(resp.Days[0].Violations))
	}
	if resp.Days[0].Violations[0].RuleCode != "REST_11H" {
		t.Errorf("rule code: got %s, want REST_11H", resp.Days[0].Violations[0].RuleCode)
	}
}

func TestBuildView_ViolationFetchFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)
	mockViolations := hrviolation.NewMockViolationRepository(ctrl)

	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[domain.DayDate]*domain.DaySchedule{}, nil)
	expectNoCoverage(mockRepo)

	mockViolations.EXPECT().
		GetViolationsByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service unavailable"))

	svc := newTestService(mockRepo, mockViolations)

	resp, err := svc.BuildView(context.Background(), "2025-03-10", "2025-03-10", ViewOptions{})
	if err != nil {
		t.Fatalf("expected view without violations, got error: %v", err)
	}
	if len(resp.Days[0].Violations) != 0 {
		t.Errorf("violations: got %d, want 0", len(resp.Days[0].Violations))
	}
}

func TestBuildView_IncludeLanes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	day := domain.DayDate("2025-03-10")
	schedules := map[domain.DayDate]*domain.DaySchedule{
		day: {
			Day:  day,
			Kind: domain.DayKindWorking,
			Tranches: []domain.RawInterval{
				{SourceID: 1, Start: mustTime(t, "08:00"), End: mustTime(t, "12:00")},
				{SourceID: 2, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00")},
				{SourceID: 3, Start: mustTime(t, "11:00"), End: mustTime(t, "13:00")},
			},
		},
	}

	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(schedules, nil)
	expectNoCoverage(mockRepo)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.BuildView(context.Background(), day, day, ViewOptions{IncludeLanes: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lanes := resp.Days[0].Lanes
	if lanes == nil {
		t.Fatal("expected lane layout, got nil")
	}
	if lanes.LaneCount != 2 {
		t.Errorf("LaneCount: got %d, want 2", lanes.LaneCount)
	}
	if len(lanes.Segments) != 3 {
		t.Errorf("packed segments: got %d, want 3", len(lanes.Segments))
	}
}

func TestPackDay_SubWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	day := domain.DayDate("2025-03-10")
	schedules := map[domain.DayDate]*domain.DaySchedule{
		day: {
			Day:  day,
			Kind: domain.DayKindWorking,
			Tranches: []domain.RawInterval{
				{SourceID: 1, Start: mustTime(t, "09:00"), End: mustTime(t, "12:00")},
			},
		},
	}

	mockRepo.EXPECT().
		GetDaySchedulesInRange(gomock.Any(), day.Prev(), day).
		Return(schedules, nil)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.PackDay(context.Background(), day, ViewOptions{
		RangeStart: mustTime(t, "06:00"),
		RangeEnd:   mustTime(t, "18:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Date != "2025-03-10" {
		t.Errorf("date: got %s, want 2025-03-10", resp.Date)
	}
	if resp.LaneCount != 1 {
		t.Errorf("LaneCount: got %d, want 1", resp.LaneCount)
	}
	if len(resp.Segments) != 1 {
		t.Fatalf("segments: got %d, want 1", len(resp.Segments))
	}
	seg := resp.Segments[0]
	if seg.LeftPct != 25 || seg.WidthPct != 25 {
		t.Errorf("geometry: got left=%v width=%v, want 25/25", seg.LeftPct, seg.WidthPct)
	}
}

func TestDayCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	day := domain.DayDate("2025-03-10")

	mockRepo.EXPECT().
		GetCoverageRequirements(gomock.Any(), day.Weekday()).
		Return([]domain.CoverageRequirement{
			{Weekday: day.Weekday(), TrancheID: 1, RequiredCount: 1},
			{Weekday: day.Weekday(), TrancheID: 2, RequiredCount: 1},
		}, nil)
	mockRepo.EXPECT().
		GetDayAssignments(gomock.Any(), day).
		Return(&domain.DayAssignments{
			Day: day,
			Assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{101}},
			},
		}, nil)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.DayCoverage(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Severity != "warning" {
		t.Errorf("severity: got %s, want warning", resp.Severity)
	}
	if resp.TotalTranches != 2 || resp.CoveredTranches != 1 || resp.MissingTranches != 1 {
		t.Errorf("tranche counts: got total=%d covered=%d missing=%d, want 2/1/1",
			resp.TotalTranches, resp.CoveredTranches, resp.MissingTranches)
	}
}

func TestDayCoverage_Unconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockScheduleRepository(ctrl)

	day := domain.DayDate("2025-03-10")

	mockRepo.EXPECT().
		GetCoverageRequirements(gomock.Any(), day.Weekday()).
		Return(nil, domain.ErrRequirementsNotFound)
	mockRepo.EXPECT().
		GetDayAssignments(gomock.Any(), day).
		Return(nil, domain.ErrDayAssignmentsNotFound)

	svc := newTestService(mockRepo, nil)

	resp, err := svc.DayCoverage(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Severity != "none_configured" {
		t.Errorf("severity: got %s, want none_configured", resp.Severity)
	}
	if resp.IsConfigured {
		t.Error("IsConfigured: got true, want false")
	}
}
