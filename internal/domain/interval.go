package domain

import "fmt"

// RawInterval is one scheduled occurrence of a tranche on a given day,
// possibly crossing midnight. Source records are never mutated; the
// splitter derives fresh Segments from them on every pass.
type RawInterval struct {
	SourceID int64
	Label    string
	Start    TimeOfDay
	End      TimeOfDay
	Meta     map[string]string
}

// Segment is one day-bounded, non-wrapping slice of a RawInterval.
// Start < End always holds and the segment belongs to exactly one Day.
type Segment struct {
	Key           string
	SourceID      int64
	Label         string
	Day           DayDate
	Start         TimeOfDay
	End           TimeOfDay
	ContinuesPrev bool
	ContinuesNext bool
	Meta          map[string]string
}

// Duration returns the segment length in minutes.
func (s *Segment) Duration() int {
	return int(s.End - s.Start)
}

// SegmentKey builds the deterministic key for the ordinal-th segment
// derived from sourceID on day. Re-materializing the same input yields the
// same keys, which consumers rely on for stable diffing.
func SegmentKey(day DayDate, sourceID int64, ordinal int) string {
	return fmt.Sprintf("%s/%d/%d", day, sourceID, ordinal)
}

// LaneSegment is a Segment placed for rendering against one fixed
// (rangeStart, rangeEnd) window. Two LaneSegments sharing a Lane from the
// same packing call never overlap in [Start, End).
type LaneSegment struct {
	Segment
	Lane     int
	LeftPct  float64
	WidthPct float64
}
