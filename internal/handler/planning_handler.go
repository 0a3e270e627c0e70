package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velochron/planline/internal/config"
	"github.com/velochron/planline/internal/domain"
	"github.com/velochron/planline/internal/infra/taskqueue"
	"github.com/velochron/planline/internal/service/planning"
)

type PlanningHandler struct {
	planningService  *planning.Service
	config           *config.Config
	coverageRecorder domain.CoverageRecorder
	taskQueue        taskqueue.TaskQueue
}

func NewPlanningHandler(
	planningService *planning.Service,
	cfg *config.Config,
	coverageRecorder domain.CoverageRecorder,
	taskQueue taskqueue.TaskQueue,
) *PlanningHandler {
	return &PlanningHandler{
		planningService:  planningService,
		config:           cfg,
		coverageRecorder: coverageRecorder,
		taskQueue:        taskQueue,
	}
}

// HandlePlanningView serves GET /api/v1/planning: the dense day view for
// [start, end], defaulting to a window of the configured length starting
// today.
func (h *PlanningHandler) HandlePlanningView(c *gin.Context) {
	ctx := c.Request.Context()

	start, end, ok := h.resolveWindow(c)
	if !ok {
		return
	}

	opts, ok := parseViewOptions(c)
	if !ok {
		return
	}

	resp, err := h.planningService.BuildView(ctx, start, end, opts)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	h.recordCoverage(c, resp)
	h.enqueueAlerts(c, resp)

	c.JSON(http.StatusOK, resp)
}

// HandleDayLanes serves GET /api/v1/planning/:date/lanes: a single day
// repacked against a sub-window.
func (h *PlanningHandler) HandleDayLanes(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := domain.ParseDayDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	opts, ok := parseViewOptions(c)
	if !ok {
		return
	}

	resp, err := h.planningService.PackDay(ctx, day, opts)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleDayCoverage serves GET /api/v1/planning/:date/coverage.
func (h *PlanningHandler) HandleDayCoverage(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := domain.ParseDayDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	resp, err := h.planningService.DayCoverage(ctx, day)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PlanningHandler) resolveWindow(c *gin.Context) (domain.DayDate, domain.DayDate, bool) {
	var start domain.DayDate
	if raw := c.Query("start"); raw != "" {
		parsed, err := domain.ParseDayDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
			return "", "", false
		}
		start = parsed
	} else {
		start = domain.DayDateOf(time.Now())
	}

	var end domain.DayDate
	if raw := c.Query("end"); raw != "" {
		parsed, err := domain.ParseDayDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
			return "", "", false
		}
		end = parsed
	} else {
		end = domain.DayDateOf(start.Time().AddDate(0, 0, h.config.Planning.DefaultViewDays-1))
	}

	if end >= start {
		days := int(end.Time().Sub(start.Time())/(24*time.Hour)) + 1
		if days > h.config.Planning.MaxRangeDays {
			respondError(c, http.StatusBadRequest, "requested range exceeds the maximum of "+strconv.Itoa(h.config.Planning.MaxRangeDays)+" days")
			return "", "", false
		}
	}

	return start, end, true
}

func (h *PlanningHandler) recordCoverage(c *gin.Context, resp *planning.ViewResponse) {
	if h.coverageRecorder == nil {
		return
	}

	ctx := c.Request.Context()
	now := time.Now()

	records := make([]domain.DayCoverageRecord, 0, len(resp.Days))
	for _, day := range resp.Days {
		records = append(records, domain.DayCoverageRecord{
			Day:             day.Date,
			Severity:        day.Coverage.Severity,
			TotalTranches:   day.Coverage.TotalTranches,
			CoveredTranches: day.Coverage.CoveredTranches,
			MissingTranches: day.Coverage.MissingTranches,
			RequiredAgents:  day.Coverage.RequiredAgents,
			AssignedAgents:  day.Coverage.AssignedAgents,
			ViewedAt:        now,
		})
	}

	if err := h.coverageRecorder.RecordDayCoverage(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record day coverage",
			slog.Int("record_count", len(records)),
			slog.String("error", err.Error()),
		)
	}
}

func (h *PlanningHandler) enqueueAlerts(c *gin.Context, resp *planning.ViewResponse) {
	if h.taskQueue == nil || !h.config.Planning.AlertsEnabled || resp.WarningDays == 0 {
		return
	}

	ctx := c.Request.Context()

	for _, day := range resp.Days {
		if day.Coverage.Severity != domain.CoverageSeverityWarning.String() {
			continue
		}

		task := &taskqueue.CoverageAlertTask{
			TaskID:          "coverage-alert-" + day.Date + "-" + uuid.NewString(),
			ScheduleAt:      time.Now(),
			Day:             day.Date,
			Severity:        day.Coverage.Severity,
			MissingTranches: day.Coverage.MissingTranches,
			TotalTranches:   day.Coverage.TotalTranches,
		}

		if _, err := h.taskQueue.RegisterAlert(ctx, task); err != nil {
			slog.WarnContext(ctx, "failed to enqueue coverage alert",
				slog.String("day", day.Date),
				slog.String("error", err.Error()),
			)
			continue
		}

		slog.InfoContext(ctx, "coverage alert enqueued",
			slog.String("day", day.Date),
			slog.Int("missing_tranches", day.Coverage.MissingTranches),
		)
	}
}

func parseViewOptions(c *gin.Context) (planning.ViewOptions, bool) {
	opts := planning.ViewOptions{IncludeLanes: true}

	if raw := c.Query("range_start"); raw != "" {
		parsed, err := domain.ParseTimeOfDay(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid range_start, expected HH:MM or HH:MM:SS")
			return opts, false
		}
		opts.RangeStart = parsed
	}

	if raw := c.Query("range_end"); raw != "" {
		parsed, err := domain.ParseTimeOfDay(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid range_end, expected HH:MM or HH:MM:SS")
			return opts, false
		}
		opts.RangeEnd = parsed
	}

	if raw := c.Query("min_width_pct"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid min_width_pct, expected a number")
			return opts, false
		}
		opts.MinWidthPct = parsed
	}

	if raw := c.Query("lanes"); raw != "" {
		opts.IncludeLanes = raw != "false"
	}

	return opts, true
}

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidDayDate),
		errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrInvalidWeekday):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDayScheduleNotFound),
		errors.Is(err, domain.ErrRequirementsNotFound),
		errors.Is(err, domain.ErrDayAssignmentsNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
