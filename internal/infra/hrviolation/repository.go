package hrviolation

import (
	"context"
	"encoding/json"

	"github.com/velochron/planline/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=hrviolation

// ViolationRecord is one HR-rule violation as reported by the external
// rule subsystem. Records pass through to day view-models for display;
// this service never interprets them.
type ViolationRecord struct {
	ID       string          `json:"id"`
	DayDate  string          `json:"day_date"`
	RuleCode string          `json:"rule_code"`
	Severity string          `json:"severity"`
	Message  string          `json:"message"`
	Details  json.RawMessage `json:"details,omitempty"`
}

type ViolationsResponse struct {
	Violations []ViolationRecord `json:"violations"`
	Count      int               `json:"count"`
}

type ViolationRepository interface {
	GetViolationsByDateRange(ctx context.Context, start, end domain.DayDate) (*ViolationsResponse, error)
}
