package stub

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler stands in for the HR-rule subsystem during load tests: seed
// violations per day, then point HR_VIOLATION_SERVICE_URL at this stub.
type Handler struct {
	storage *DayStorage
}

func NewHandler(storage *DayStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalCount := 0
	for _, day := range req.Days {
		if _, err := time.Parse("2006-01-02", day.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + day.Date})
			return
		}

		ruleCode := day.RuleCode
		if ruleCode == "" {
			ruleCode = "REST_11H"
		}
		severity := day.Severity
		if severity == "" {
			severity = "high"
		}

		records := make([]ViolationRecord, 0, day.Count)
		for i := 0; i < day.Count; i++ {
			records = append(records, ViolationRecord{
				ID:       uuid.NewString(),
				DayDate:  day.Date,
				RuleCode: ruleCode,
				Severity: severity,
				Message:  fmt.Sprintf("seeded violation %d for %s", i, day.Date),
			})
		}

		h.storage.Add(runID, records)
		totalCount += day.Count
	}

	slog.Info("seeded violations",
		slog.String("run_id", runID),
		slog.Int("day_count", len(req.Days)),
		slog.Int("total_count", totalCount),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":      "seeded",
		"run_id":      runID,
		"total_count": totalCount,
	})
}

func (h *Handler) HandleGetViolations(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end are required"})
		return
	}

	violations := h.storage.GetRange(runID, start, end)
	if violations == nil {
		violations = []ViolationRecord{}
	}

	c.JSON(http.StatusOK, ViolationsResponse{
		Violations: violations,
		Count:      len(violations),
	})
}
