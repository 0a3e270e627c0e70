package coverage

import (
	"testing"

	"github.com/velochron/planline/internal/domain"
)

func TestAggregator_Aggregate(t *testing.T) {
	aggregator := NewAggregator()

	tests := []struct {
		name         string
		requirements []domain.CoverageRequirement
		assignments  []domain.TrancheAssignment
		want         domain.CoverageResult
		wantSeverity domain.CoverageSeverity
	}{
		{
			name:         "no configuration",
			requirements: nil,
			assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{10}},
			},
			want: domain.CoverageResult{
				IsConfigured:   false,
				AssignedAgents: 1,
			},
			wantSeverity: domain.CoverageSeverityNone,
		},
		{
			name: "configured with zero staff needed",
			requirements: []domain.CoverageRequirement{
				{Weekday: 1, TrancheID: 1, RequiredCount: 0},
			},
			want: domain.CoverageResult{
				IsConfigured: true,
			},
			wantSeverity: domain.CoverageSeverityOK,
		},
		{
			name: "under covered tranche counts once",
			requirements: []domain.CoverageRequirement{
				{Weekday: 1, TrancheID: 1, RequiredCount: 2},
			},
			assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{10}},
			},
			want: domain.CoverageResult{
				Total:          1,
				Covered:        0,
				Missing:        1,
				IsConfigured:   true,
				RequiredAgents: 2,
				AssignedAgents: 1,
			},
			wantSeverity: domain.CoverageSeverityWarning,
		},
		{
			name: "exactly met requirement is covered",
			requirements: []domain.CoverageRequirement{
				{Weekday: 1, TrancheID: 1, RequiredCount: 2},
			},
			assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{10, 11}},
			},
			want: domain.CoverageResult{
				Total:          1,
				Covered:        1,
				Missing:        0,
				IsConfigured:   true,
				RequiredAgents: 2,
				AssignedAgents: 2,
			},
			wantSeverity: domain.CoverageSeverityOK,
		},
		{
			name: "overstaffing gives no extra credit",
			requirements: []domain.CoverageRequirement{
				{Weekday: 1, TrancheID: 1, RequiredCount: 1},
				{Weekday: 1, TrancheID: 2, RequiredCount: 2},
			},
			assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{10, 11, 12}},
			},
			want: domain.CoverageResult{
				Total:          2,
				Covered:        1,
				Missing:        1,
				IsConfigured:   true,
				RequiredAgents: 3,
				AssignedAgents: 3,
			},
			wantSeverity: domain.CoverageSeverityWarning,
		},
		{
			name: "unrequired assignments count toward headcount only",
			requirements: []domain.CoverageRequirement{
				{Weekday: 1, TrancheID: 1, RequiredCount: 1},
			},
			assignments: []domain.TrancheAssignment{
				{TrancheID: 1, AgentIDs: []int64{10}},
				{TrancheID: 9, AgentIDs: []int64{20, 21}},
			},
			want: domain.CoverageResult{
				Total:          1,
				Covered:        1,
				Missing:        0,
				IsConfigured:   true,
				RequiredAgents: 1,
				AssignedAgents: 3,
			},
			wantSeverity: domain.CoverageSeverityOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregator.Aggregate(tt.requirements, tt.assignments)
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
			if got.Severity() != tt.wantSeverity {
				t.Errorf("Severity() = %q, want %q", got.Severity(), tt.wantSeverity)
			}
		})
	}
}

// TestAggregator_Monotonicity: adding agents to any tranche never lowers
// covered and never raises missing.
func TestAggregator_Monotonicity(t *testing.T) {
	aggregator := NewAggregator()

	requirements := []domain.CoverageRequirement{
		{Weekday: 2, TrancheID: 1, RequiredCount: 2},
		{Weekday: 2, TrancheID: 2, RequiredCount: 3},
		{Weekday: 2, TrancheID: 3, RequiredCount: 1},
	}

	prev := aggregator.Aggregate(requirements, nil)
	agents := []int64{}
	for n := int64(1); n <= 10; n++ {
		agents = append(agents, n)
		assignments := []domain.TrancheAssignment{
			{TrancheID: 1, AgentIDs: agents},
			{TrancheID: 2, AgentIDs: agents},
			{TrancheID: 3, AgentIDs: agents},
		}
		got := aggregator.Aggregate(requirements, assignments)
		if got.Covered < prev.Covered {
			t.Fatalf("covered dropped from %d to %d with %d agents", prev.Covered, got.Covered, n)
		}
		if got.Missing > prev.Missing {
			t.Fatalf("missing rose from %d to %d with %d agents", prev.Missing, got.Missing, n)
		}
		prev = got
	}

	if prev.Covered != 3 || prev.Missing != 0 {
		t.Errorf("final result = %+v, want all 3 tranches covered", prev)
	}
}
