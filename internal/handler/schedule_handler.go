package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velochron/planline/internal/domain"
)

type ScheduleHandler struct {
	repo domain.ScheduleRepository
}

func NewScheduleHandler(repo domain.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

type trancheRequest struct {
	TrancheID int64             `json:"tranche_id"`
	Label     string            `json:"label"`
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Meta      map[string]string `json:"meta,omitempty"`
}

type dayScheduleRequest struct {
	Kind        string           `json:"kind"`
	Description string           `json:"description"`
	IsOffShift  bool             `json:"is_off_shift"`
	Tranches    []trancheRequest `json:"tranches"`
}

type dayScheduleResponse struct {
	Date        string            `json:"date"`
	Kind        string            `json:"kind"`
	Description string            `json:"description,omitempty"`
	IsOffShift  bool              `json:"is_off_shift"`
	Tranches    []trancheResponse `json:"tranches"`
}

type trancheResponse struct {
	TrancheID int64             `json:"tranche_id"`
	Label     string            `json:"label,omitempty"`
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Meta      map[string]string `json:"meta,omitempty"`
}

type requirementRequest struct {
	TrancheID     int64 `json:"tranche_id"`
	RequiredCount int   `json:"required_count"`
}

type assignmentRequest struct {
	TrancheID int64   `json:"tranche_id"`
	AgentIDs  []int64 `json:"agent_ids"`
}

// HandleUpsertDaySchedule serves PUT /api/v1/schedule/days/:date.
func (h *ScheduleHandler) HandleUpsertDaySchedule(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := domain.ParseDayDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	var req dayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tranches := make([]domain.RawInterval, 0, len(req.Tranches))
	for _, tranche := range req.Tranches {
		start, err := domain.ParseTimeOfDay(tranche.Start)
		if err != nil {
			respondError(c, http.StatusBadRequest, "tranche "+strconv.FormatInt(tranche.TrancheID, 10)+": invalid start time, expected HH:MM or HH:MM:SS")
			return
		}
		end, err := domain.ParseTimeOfDay(tranche.End)
		if err != nil {
			respondError(c, http.StatusBadRequest, "tranche "+strconv.FormatInt(tranche.TrancheID, 10)+": invalid end time, expected HH:MM or HH:MM:SS")
			return
		}

		tranches = append(tranches, domain.RawInterval{
			SourceID: tranche.TrancheID,
			Label:    tranche.Label,
			Start:    start,
			End:      end,
			Meta:     tranche.Meta,
		})
	}

	schedule := &domain.DaySchedule{
		Day:         day,
		Kind:        domain.ParseDayKind(req.Kind),
		Description: req.Description,
		IsOffShift:  req.IsOffShift,
		Tranches:    tranches,
	}

	if err := h.repo.SaveDaySchedule(ctx, schedule); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dayScheduleView(schedule))
}

// HandleGetDaySchedule serves GET /api/v1/schedule/days/:date.
func (h *ScheduleHandler) HandleGetDaySchedule(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := domain.ParseDayDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	schedule, err := h.repo.GetDaySchedule(ctx, day)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dayScheduleView(schedule))
}

// HandleReplaceRequirements serves PUT /api/v1/coverage/requirements/:weekday
// and replaces the weekday's requirement set wholesale.
func (h *ScheduleHandler) HandleReplaceRequirements(c *gin.Context) {
	ctx := c.Request.Context()

	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		respondError(c, http.StatusBadRequest, "invalid weekday, expected 0 (Sunday) through 6 (Saturday)")
		return
	}

	var reqs []requirementRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	requirements := make([]domain.CoverageRequirement, 0, len(reqs))
	for _, req := range reqs {
		requirements = append(requirements, domain.CoverageRequirement{
			Weekday:       weekday,
			TrancheID:     req.TrancheID,
			RequiredCount: req.RequiredCount,
		})
	}

	if err := h.repo.SaveCoverageRequirements(ctx, weekday, requirements); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekday":           weekday,
		"requirement_count": len(requirements),
	})
}

// HandleReplaceAssignments serves PUT /api/v1/schedule/days/:date/assignments.
func (h *ScheduleHandler) HandleReplaceAssignments(c *gin.Context) {
	ctx := c.Request.Context()

	day, err := domain.ParseDayDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	var reqs []assignmentRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	assignments := make([]domain.TrancheAssignment, 0, len(reqs))
	for _, req := range reqs {
		assignments = append(assignments, domain.TrancheAssignment{
			TrancheID: req.TrancheID,
			AgentIDs:  req.AgentIDs,
		})
	}

	if err := h.repo.SaveDayAssignments(ctx, &domain.DayAssignments{
		Day:         day,
		Assignments: assignments,
	}); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":             day.String(),
		"assignment_count": len(assignments),
	})
}

func dayScheduleView(schedule *domain.DaySchedule) dayScheduleResponse {
	tranches := make([]trancheResponse, 0, len(schedule.Tranches))
	for _, tranche := range schedule.Tranches {
		tranches = append(tranches, trancheResponse{
			TrancheID: tranche.SourceID,
			Label:     tranche.Label,
			Start:     tranche.Start.Wire(),
			End:       tranche.End.Wire(),
			Meta:      tranche.Meta,
		})
	}

	return dayScheduleResponse{
		Date:        schedule.Day.String(),
		Kind:        schedule.Kind.String(),
		Description: schedule.Description,
		IsOffShift:  schedule.IsOffShift,
		Tranches:    tranches,
	}
}
