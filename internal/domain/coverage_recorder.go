package domain

import (
	"context"
	"time"
)

type DayCoverageRecord struct {
	Day             string
	Severity        string
	TotalTranches   int
	CoveredTranches int
	MissingTranches int
	RequiredAgents  int
	AssignedAgents  int
	ViewedAt        time.Time
}

type CoverageRecorder interface {
	RecordDayCoverage(ctx context.Context, records []DayCoverageRecord) error
	Flush(ctx context.Context) error
	Close() error
}
