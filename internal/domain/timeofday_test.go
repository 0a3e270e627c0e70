package domain

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{
			name:  "midnight",
			input: "00:00",
			want:  0,
		},
		{
			name:  "morning with seconds",
			input: "06:30:00",
			want:  390,
		},
		{
			name:  "seconds are ignored",
			input: "06:30:59",
			want:  390,
		},
		{
			name:  "end of day short form",
			input: "24:00",
			want:  MinutesPerDay,
		},
		{
			name:  "end of day wire form",
			input: "24:00:00",
			want:  MinutesPerDay,
		},
		{
			name:  "last minute of day",
			input: "23:59",
			want:  1439,
		},
		{
			name:    "24:01 is invalid",
			input:   "24:01",
			wantErr: true,
		},
		{
			name:    "25 hours is invalid",
			input:   "25:00",
			wantErr: true,
		},
		{
			name:    "minutes out of range",
			input:   "12:60",
			wantErr: true,
		},
		{
			name:    "negative hours",
			input:   "-1:00",
			wantErr: true,
		},
		{
			name:    "non-numeric hours",
			input:   "ab:00",
			wantErr: true,
		},
		{
			name:    "missing minutes",
			input:   "12",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "12:00:00:00",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeOfDay(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Errorf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTimeFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay_WireRoundTrip(t *testing.T) {
	for m := TimeOfDay(0); m <= MinutesPerDay; m++ {
		got, err := ParseTimeOfDay(m.Wire())
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) error = %v", m.Wire(), err)
		}
		if got != m {
			t.Fatalf("round trip of %d through %q = %d", m, m.Wire(), got)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tests := []struct {
		minutes TimeOfDay
		want    string
	}{
		{0, "00:00"},
		{390, "06:30"},
		{1439, "23:59"},
		{MinutesPerDay, "24:00"},
	}

	for _, tt := range tests {
		if got := tt.minutes.String(); got != tt.want {
			t.Errorf("TimeOfDay(%d).String() = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTimeOfDay_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		value  TimeOfDay
		lo, hi TimeOfDay
		want   TimeOfDay
	}{
		{"inside window", 600, 480, 1080, 600},
		{"below window", 120, 480, 1080, 480},
		{"above window", 1200, 480, 1080, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Clamp(tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
