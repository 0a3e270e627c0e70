package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the exclusive end-of-day boundary. A TimeOfDay of 1440
// ("24:00") marks the end of a day and is distinct from 0 ("00:00").
const MinutesPerDay = 1440

// TimeOfDay is a wall-clock time stored as minutes since midnight, 0..1440.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are ignored. "24:00" and "24:00:00" parse to exactly 1440.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hours == 24 && minutes == 0 {
		return MinutesPerDay, nil
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// String renders the display form "HH:MM". Seconds are dropped; round-trip
// fidelity is guaranteed only through Wire.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Wire renders the data-layer form "HH:MM:SS".
// ParseTimeOfDay(t.Wire()) == t for every t in [0, 1440].
func (t TimeOfDay) Wire() string {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60)
}

// Valid reports whether t lies within [0, 1440].
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

// Clamp restricts t to [lo, hi]. Used when projecting segments onto a
// visible range; raw domain values outside [0, 1440] are rejected at parse
// time instead.
func (t TimeOfDay) Clamp(lo, hi TimeOfDay) TimeOfDay {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}
