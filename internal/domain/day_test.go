package domain

import (
	"errors"
	"testing"
)

func TestParseDayDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2025-03-10", false},
		{"leap day", "2024-02-29", false},
		{"non-leap february 29", "2025-02-29", true},
		{"wrong layout", "10/03/2025", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDayDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDayDate(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidDayDate) {
					t.Errorf("ParseDayDate(%q) error = %v, want ErrInvalidDayDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDayDate(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.input {
				t.Errorf("ParseDayDate(%q) = %q", tt.input, got)
			}
		})
	}
}

func TestDayDate_Next(t *testing.T) {
	tests := []struct {
		day  DayDate
		want DayDate
	}{
		{"2025-03-10", "2025-03-11"},
		{"2025-03-31", "2025-04-01"},
		{"2025-12-31", "2026-01-01"},
		{"2024-02-28", "2024-02-29"},
	}

	for _, tt := range tests {
		if got := tt.day.Next(); got != tt.want {
			t.Errorf("DayDate(%q).Next() = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestDayDate_Weekday(t *testing.T) {
	// 2025-03-09 is a Sunday.
	tests := []struct {
		day  DayDate
		want int
	}{
		{"2025-03-09", 0},
		{"2025-03-10", 1},
		{"2025-03-15", 6},
	}

	for _, tt := range tests {
		if got := tt.day.Weekday(); got != tt.want {
			t.Errorf("DayDate(%q).Weekday() = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestParseDayKind(t *testing.T) {
	tests := []struct {
		input string
		want  DayKind
	}{
		{"working", DayKindWorking},
		{"rest", DayKindRest},
		{"absence", DayKindAbsence},
		{"zcot", DayKindZCOT},
		{"vacation", DayKindUnknown},
		{"", DayKindUnknown},
	}

	for _, tt := range tests {
		if got := ParseDayKind(tt.input); got != tt.want {
			t.Errorf("ParseDayKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCoverageResult_Severity(t *testing.T) {
	tests := []struct {
		name   string
		result CoverageResult
		want   CoverageSeverity
	}{
		{
			name:   "not configured",
			result: CoverageResult{IsConfigured: false},
			want:   CoverageSeverityNone,
		},
		{
			name:   "configured with zero staff needed",
			result: CoverageResult{IsConfigured: true},
			want:   CoverageSeverityOK,
		},
		{
			name:   "fully covered",
			result: CoverageResult{IsConfigured: true, Total: 3, Covered: 3},
			want:   CoverageSeverityOK,
		},
		{
			name:   "under covered",
			result: CoverageResult{IsConfigured: true, Total: 3, Covered: 2, Missing: 1},
			want:   CoverageSeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Severity(); got != tt.want {
				t.Errorf("Severity() = %q, want %q", got, tt.want)
			}
		})
	}
}
