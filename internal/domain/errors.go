package domain

import "errors"

var (
	ErrInvalidTimeFormat      = errors.New("invalid time format")
	ErrInvalidDayDate         = errors.New("invalid day date")
	ErrInvalidRange           = errors.New("invalid date range")
	ErrInvalidWeekday         = errors.New("invalid weekday")
	ErrDayScheduleNotFound    = errors.New("day schedule not found")
	ErrRequirementsNotFound   = errors.New("coverage requirements not found")
	ErrDayAssignmentsNotFound = errors.New("day assignments not found")
)
