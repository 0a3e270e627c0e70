package domain

// CoverageRequirement configures the headcount a tranche needs on one
// weekday (0=Sunday..6=Saturday), independent of calendar date.
type CoverageRequirement struct {
	Weekday       int
	TrancheID     int64
	RequiredCount int
}

// TrancheAssignment is the set of agents actually scheduled on a tranche
// for one day.
type TrancheAssignment struct {
	TrancheID int64
	AgentIDs  []int64
}

// DayAssignments groups one day's tranche assignments.
type DayAssignments struct {
	Day         DayDate
	Assignments []TrancheAssignment
}

// CoverageSeverity is the three-tier badge state derived from a day's
// coverage. Sub-covered days sort first in consuming views.
type CoverageSeverity string

const (
	CoverageSeverityNone    CoverageSeverity = "none_configured"
	CoverageSeverityOK      CoverageSeverity = "ok"
	CoverageSeverityWarning CoverageSeverity = "warning"
)

func (s CoverageSeverity) String() string {
	return string(s)
}

// CoverageResult summarizes one day's coverage at tranche granularity.
// Total counts tranches with a positive requirement; a tranche is covered
// iff its assigned headcount meets the requirement (binary, no partial
// credit). RequiredAgents/AssignedAgents carry the headcount sums for
// display only.
type CoverageResult struct {
	Total          int
	Covered        int
	Missing        int
	IsConfigured   bool
	RequiredAgents int
	AssignedAgents int
}

// Severity maps the result onto the badge tiers: not configured is a
// neutral state distinct from "configured with zero staff needed".
func (r CoverageResult) Severity() CoverageSeverity {
	switch {
	case !r.IsConfigured:
		return CoverageSeverityNone
	case r.Missing > 0:
		return CoverageSeverityWarning
	default:
		return CoverageSeverityOK
	}
}
