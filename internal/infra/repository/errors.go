package repository

import "errors"

var (
	ErrRedisConnection        = errors.New("redis connection error")
	ErrInvalidScheduleData    = errors.New("invalid day schedule data")
	ErrInvalidRequirementData = errors.New("invalid coverage requirement data")
	ErrInvalidAssignmentData  = errors.New("invalid assignment data")
)
