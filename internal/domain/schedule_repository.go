package domain

import "context"

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

type ScheduleRepository interface {
	SaveDaySchedule(ctx context.Context, schedule *DaySchedule) error
	GetDaySchedule(ctx context.Context, day DayDate) (*DaySchedule, error)
	GetDaySchedulesInRange(ctx context.Context, start, end DayDate) (map[DayDate]*DaySchedule, error)
	SaveCoverageRequirements(ctx context.Context, weekday int, requirements []CoverageRequirement) error
	GetCoverageRequirements(ctx context.Context, weekday int) ([]CoverageRequirement, error)
	SaveDayAssignments(ctx context.Context, assignments *DayAssignments) error
	GetDayAssignments(ctx context.Context, day DayDate) (*DayAssignments, error)
}
