package coveragerecorder

import (
	"context"

	"github.com/velochron/planline/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.CoverageRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordDayCoverage(_ context.Context, _ []domain.DayCoverageRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
