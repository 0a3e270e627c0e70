package stub

import "encoding/json"

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

type SeedRequest struct {
	Days []SeedDay `json:"days"`
}

type SeedDay struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	RuleCode string `json:"rule_code"`
	Severity string `json:"severity"`
}
