package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/velochron/planline/internal/domain"
)

const (
	dayScheduleKeyPrefix = "planline:day:"
	requirementKeyPrefix = "planline:covreq:"
	assignmentKeyPrefix  = "planline:assign:"
)

// Planner-entered configuration, not cache: no TTL on any key.

type trancheRecord struct {
	TrancheID int64             `json:"tranche_id"`
	Label     string            `json:"label"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Meta      map[string]string `json:"meta,omitempty"`
}

type dayScheduleRecord struct {
	DayDate     string          `json:"day_date"`
	DayType     string          `json:"day_type"`
	Description string          `json:"description,omitempty"`
	IsOffShift  bool            `json:"is_off_shift"`
	Tranches    []trancheRecord `json:"tranches"`
}

type requirementRecord struct {
	Weekday       int   `json:"weekday"`
	TrancheID     int64 `json:"tranche_id"`
	RequiredCount int   `json:"required_count"`
}

type assignmentRecord struct {
	TrancheID int64   `json:"tranche_id"`
	AgentIDs  []int64 `json:"agent_ids"`
}

type dayAssignmentsRecord struct {
	DayDate     string             `json:"day_date"`
	Assignments []assignmentRecord `json:"assignments"`
}

type scheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) domain.ScheduleRepository {
	return &scheduleRepository{
		client: client,
	}
}

func (r *scheduleRepository) SaveDaySchedule(ctx context.Context, schedule *domain.DaySchedule) error {
	if schedule == nil {
		return ErrInvalidScheduleData
	}

	tranches := make([]trancheRecord, 0, len(schedule.Tranches))
	for _, tranche := range schedule.Tranches {
		tranches = append(tranches, trancheRecord{
			TrancheID: tranche.SourceID,
			Label:     tranche.Label,
			StartTime: tranche.Start.Wire(),
			EndTime:   tranche.End.Wire(),
			Meta:      tranche.Meta,
		})
	}

	record := dayScheduleRecord{
		DayDate:     schedule.Day.String(),
		DayType:     schedule.Kind.String(),
		Description: schedule.Description,
		IsOffShift:  schedule.IsOffShift,
		Tranches:    tranches,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidScheduleData
	}

	return r.client.Set(ctx, dayScheduleKeyPrefix+schedule.Day.String(), data, 0).Err()
}

func (r *scheduleRepository) GetDaySchedule(ctx context.Context, day domain.DayDate) (*domain.DaySchedule, error) {
	data, err := r.client.Get(ctx, dayScheduleKeyPrefix+day.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDayScheduleNotFound
		}
		return nil, err
	}

	return decodeDaySchedule(data)
}

func (r *scheduleRepository) GetDaySchedulesInRange(ctx context.Context, start, end domain.DayDate) (map[domain.DayDate]*domain.DaySchedule, error) {
	if end < start {
		return nil, fmt.Errorf("%w: %s..%s", domain.ErrInvalidRange, start, end)
	}

	var keys []string
	var dates []domain.DayDate
	for date := start; date <= end; date = date.Next() {
		keys = append(keys, dayScheduleKeyPrefix+date.String())
		dates = append(dates, date)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	schedules := make(map[domain.DayDate]*domain.DaySchedule)
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Missing day; the materializer synthesizes it.
			continue
		}

		schedule, err := decodeDaySchedule([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", dates[i], err)
		}
		schedules[dates[i]] = schedule
	}

	return schedules, nil
}

func (r *scheduleRepository) SaveCoverageRequirements(ctx context.Context, weekday int, requirements []domain.CoverageRequirement) error {
	if weekday < 0 || weekday > 6 {
		return domain.ErrInvalidWeekday
	}

	records := make([]requirementRecord, 0, len(requirements))
	for _, req := range requirements {
		records = append(records, requirementRecord{
			Weekday:       weekday,
			TrancheID:     req.TrancheID,
			RequiredCount: req.RequiredCount,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return ErrInvalidRequirementData
	}

	return r.client.Set(ctx, requirementKeyPrefix+strconv.Itoa(weekday), data, 0).Err()
}

func (r *scheduleRepository) GetCoverageRequirements(ctx context.Context, weekday int) ([]domain.CoverageRequirement, error) {
	if weekday < 0 || weekday > 6 {
		return nil, domain.ErrInvalidWeekday
	}

	data, err := r.client.Get(ctx, requirementKeyPrefix+strconv.Itoa(weekday)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRequirementsNotFound
		}
		return nil, err
	}

	var records []requirementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ErrInvalidRequirementData
	}

	requirements := make([]domain.CoverageRequirement, 0, len(records))
	for _, record := range records {
		requirements = append(requirements, domain.CoverageRequirement{
			Weekday:       record.Weekday,
			TrancheID:     record.TrancheID,
			RequiredCount: record.RequiredCount,
		})
	}

	return requirements, nil
}

func (r *scheduleRepository) SaveDayAssignments(ctx context.Context, assignments *domain.DayAssignments) error {
	if assignments == nil {
		return ErrInvalidAssignmentData
	}

	records := make([]assignmentRecord, 0, len(assignments.Assignments))
	for _, assignment := range assignments.Assignments {
		records = append(records, assignmentRecord{
			TrancheID: assignment.TrancheID,
			AgentIDs:  assignment.AgentIDs,
		})
	}

	record := dayAssignmentsRecord{
		DayDate:     assignments.Day.String(),
		Assignments: records,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidAssignmentData
	}

	return r.client.Set(ctx, assignmentKeyPrefix+assignments.Day.String(), data, 0).Err()
}

func (r *scheduleRepository) GetDayAssignments(ctx context.Context, day domain.DayDate) (*domain.DayAssignments, error) {
	data, err := r.client.Get(ctx, assignmentKeyPrefix+day.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDayAssignmentsNotFound
		}
		return nil, err
	}

	var record dayAssignmentsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidAssignmentData
	}

	assignments := make([]domain.TrancheAssignment, 0, len(record.Assignments))
	for _, a := range record.Assignments {
		assignments = append(assignments, domain.TrancheAssignment{
			TrancheID: a.TrancheID,
			AgentIDs:  a.AgentIDs,
		})
	}

	return &domain.DayAssignments{
		Day:         domain.DayDate(record.DayDate),
		Assignments: assignments,
	}, nil
}

// decodeDaySchedule parses wire "HH:MM:SS" times at the boundary so a
// malformed stored time surfaces as ErrInvalidTimeFormat before any
// timeline arithmetic runs on it.
func decodeDaySchedule(data []byte) (*domain.DaySchedule, error) {
	var record dayScheduleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidScheduleData
	}

	tranches := make([]domain.RawInterval, 0, len(record.Tranches))
	for _, tranche := range record.Tranches {
		start, err := domain.ParseTimeOfDay(tranche.StartTime)
		if err != nil {
			return nil, fmt.Errorf("tranche %d start: %w", tranche.TrancheID, err)
		}
		end, err := domain.ParseTimeOfDay(tranche.EndTime)
		if err != nil {
			return nil, fmt.Errorf("tranche %d end: %w", tranche.TrancheID, err)
		}

		tranches = append(tranches, domain.RawInterval{
			SourceID: tranche.TrancheID,
			Label:    tranche.Label,
			Start:    start,
			End:      end,
			Meta:     tranche.Meta,
		})
	}

	return &domain.DaySchedule{
		Day:         domain.DayDate(record.DayDate),
		Kind:        domain.ParseDayKind(record.DayType),
		Description: record.Description,
		IsOffShift:  record.IsOffShift,
		Tranches:    tranches,
	}, nil
}
