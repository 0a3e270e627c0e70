package planning

import (
	"github.com/velochron/planline/internal/domain"
	"github.com/velochron/planline/internal/infra/hrviolation"
)

// ViewOptions tunes how a planning view is rendered. The zero value means
// the full 00:00-24:00 window with default visibility filtering and no
// lane layout.
type ViewOptions struct {
	RangeStart   domain.TimeOfDay
	RangeEnd     domain.TimeOfDay
	MinWidthPct  float64
	IncludeLanes bool
}

// SegmentView is one day-owned segment in wire form. Start/End carry the
// round-trippable "HH:MM:SS" encoding, the display fields the lossy
// "HH:MM" one.
type SegmentView struct {
	Key             string            `json:"key"`
	SourceID        int64             `json:"source_id"`
	Label           string            `json:"label,omitempty"`
	Start           string            `json:"start"`
	End             string            `json:"end"`
	StartDisplay    string            `json:"start_display"`
	EndDisplay      string            `json:"end_display"`
	DurationMinutes int               `json:"duration_minutes"`
	ContinuesPrev   bool              `json:"continues_prev,omitempty"`
	ContinuesNext   bool              `json:"continues_next,omitempty"`
	Meta            map[string]string `json:"meta,omitempty"`
}

// LaneSegmentView adds rendering geometry to a segment.
type LaneSegmentView struct {
	SegmentView
	Lane     int     `json:"lane"`
	LeftPct  float64 `json:"left_pct"`
	WidthPct float64 `json:"width_pct"`
}

// LaneView is the packed layout of one day for one window.
type LaneView struct {
	RangeStart string            `json:"range_start"`
	RangeEnd   string            `json:"range_end"`
	LaneCount  int               `json:"lane_count"`
	Segments   []LaneSegmentView `json:"segments"`
}

// CoverageView is the coverage badge payload for one day.
type CoverageView struct {
	Severity        string `json:"severity"`
	IsConfigured    bool   `json:"is_configured"`
	TotalTranches   int    `json:"total_tranches"`
	CoveredTranches int    `json:"covered_tranches"`
	MissingTranches int    `json:"missing_tranches"`
	RequiredAgents  int    `json:"required_agents"`
	AssignedAgents  int    `json:"assigned_agents"`
}

// DayView is one calendar day of the planning view.
type DayView struct {
	Date        string                        `json:"date"`
	Kind        string                        `json:"kind"`
	Description string                        `json:"description,omitempty"`
	IsOffShift  bool                          `json:"is_off_shift"`
	Segments    []SegmentView                 `json:"segments"`
	Lanes       *LaneView                     `json:"lanes,omitempty"`
	Coverage    CoverageView                  `json:"coverage"`
	Violations  []hrviolation.ViolationRecord `json:"violations,omitempty"`
}

// ViewResponse is the dense, date-ordered planning view for a range.
type ViewResponse struct {
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	DayCount     int       `json:"day_count"`
	SegmentCount int       `json:"segment_count"`
	WarningDays  int       `json:"warning_days"`
	Days         []DayView `json:"days"`
}

// DayLanesResponse answers a single-day repack request.
type DayLanesResponse struct {
	Date string `json:"date"`
	LaneView
}

// DayCoverageResponse answers the coverage badge endpoint.
type DayCoverageResponse struct {
	Date string `json:"date"`
	CoverageView
}

func segmentView(seg domain.Segment) SegmentView {
	return SegmentView{
		Key:             seg.Key,
		SourceID:        seg.SourceID,
		Label:           seg.Label,
		Start:           seg.Start.Wire(),
		End:             seg.End.Wire(),
		StartDisplay:    seg.Start.String(),
		EndDisplay:      seg.End.String(),
		DurationMinutes: seg.Duration(),
		ContinuesPrev:   seg.ContinuesPrev,
		ContinuesNext:   seg.ContinuesNext,
		Meta:            seg.Meta,
	}
}

func coverageView(result domain.CoverageResult) CoverageView {
	return CoverageView{
		Severity:        result.Severity().String(),
		IsConfigured:    result.IsConfigured,
		TotalTranches:   result.Total,
		CoveredTranches: result.Covered,
		MissingTranches: result.Missing,
		RequiredAgents:  result.RequiredAgents,
		AssignedAgents:  result.AssignedAgents,
	}
}
