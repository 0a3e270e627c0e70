package coverage

import (
	"github.com/velochron/planline/internal/domain"
)

// Aggregator computes a day's coverage summary from the weekday's
// configured requirements and the day's actual assignments.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate counts coverage at tranche granularity. A tranche with a
// positive requirement is covered iff at least that many agents are
// assigned to it; there is no partial credit. Tranches with a zero
// requirement are configured but never counted. Absent configuration is a
// valid state tagged with IsConfigured=false, not an error.
func (a *Aggregator) Aggregate(requirements []domain.CoverageRequirement, assignments []domain.TrancheAssignment) domain.CoverageResult {
	assignedByTranche := make(map[int64]int, len(assignments))
	assignedAgents := 0
	for _, assignment := range assignments {
		assignedByTranche[assignment.TrancheID] += len(assignment.AgentIDs)
		assignedAgents += len(assignment.AgentIDs)
	}

	result := domain.CoverageResult{
		IsConfigured:   len(requirements) > 0,
		AssignedAgents: assignedAgents,
	}

	for _, req := range requirements {
		if req.RequiredCount <= 0 {
			continue
		}
		result.Total++
		result.RequiredAgents += req.RequiredCount
		if assignedByTranche[req.TrancheID] >= req.RequiredCount {
			result.Covered++
		}
	}
	result.Missing = result.Total - result.Covered

	return result
}
