//go:build gcloud

package coveragerecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/velochron/planline/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt      time.Time `bigquery:"recorded_at"`
	Day             string    `bigquery:"day"`
	Severity        string    `bigquery:"severity"`
	TotalTranches   int64     `bigquery:"total_tranches"`
	CoveredTranches int64     `bigquery:"covered_tranches"`
	MissingTranches int64     `bigquery:"missing_tranches"`
	RequiredAgents  int64     `bigquery:"required_agents"`
	AssignedAgents  int64     `bigquery:"assigned_agents"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CoverageRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "coverage recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, coverage recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, coverage recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "coverage recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordDayCoverage(ctx context.Context, records []domain.DayCoverageRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	bqRecords := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		bqRecords = append(bqRecords, &bigQueryRecord{
			RecordedAt:      now,
			Day:             record.Day,
			Severity:        record.Severity,
			TotalTranches:   int64(record.TotalTranches),
			CoveredTranches: int64(record.CoveredTranches),
			MissingTranches: int64(record.MissingTranches),
			RequiredAgents:  int64(record.RequiredAgents),
			AssignedAgents:  int64(record.AssignedAgents),
		})
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert coverage records to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
