//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/velochron/planline/internal/config"
	"github.com/velochron/planline/internal/infra/taskqueue"
	"github.com/velochron/planline/internal/observability"
	"github.com/velochron/planline/internal/observability/logging"
)

func initTaskQueue(_ context.Context, cfg *config.Config) (taskqueue.TaskQueue, func() error, error) {
	if cfg.TaskQueue.AlertTasksURL == "" {
		slog.Warn("ALERT_TASKS_URL not set, coverage alert registration disabled")

		return nil, nil, nil
	}

	tq := taskqueue.NewHTTPTasksClient(
		cfg.TaskQueue.AlertTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.MaxRetries,
	)

	slog.Info("task queue initialized",
		slog.String("type", "http_tasks"),
		slog.String("url", cfg.TaskQueue.AlertTasksURL),
		slog.String("queue", cfg.TaskQueue.QueueName),
	)

	return tq, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "planline"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("planline"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
