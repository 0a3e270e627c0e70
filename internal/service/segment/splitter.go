package segment

import (
	"github.com/velochron/planline/internal/domain"
)

// Splitter derives day-bounded segments from raw intervals, cutting
// overnight intervals at the midnight boundary.
type Splitter struct{}

func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split turns one interval anchored to day into its segments.
//
// End > Start emits a single same-day segment. End <= Start wraps past
// midnight: a tail to 24:00 on day and a head from 00:00 on the next day,
// linked by continuation flags. End == Start counts as a wrap (full-day
// interval), not a zero-duration one.
//
// Keys depend only on (owning day, source id, ordinal), so re-splitting
// identical input yields identical segments.
func (s *Splitter) Split(day domain.DayDate, interval domain.RawInterval) []domain.Segment {
	if interval.End > interval.Start {
		return []domain.Segment{
			{
				Key:      domain.SegmentKey(day, interval.SourceID, 0),
				SourceID: interval.SourceID,
				Label:    interval.Label,
				Day:      day,
				Start:    interval.Start,
				End:      interval.End,
				Meta:     interval.Meta,
			},
		}
	}

	nextDay := day.Next()
	tail := domain.Segment{
		Key:           domain.SegmentKey(day, interval.SourceID, 0),
		SourceID:      interval.SourceID,
		Label:         interval.Label,
		Day:           day,
		Start:         interval.Start,
		End:           domain.MinutesPerDay,
		ContinuesNext: interval.End != 0,
		Meta:          interval.Meta,
	}
	head := domain.Segment{
		Key:           domain.SegmentKey(nextDay, interval.SourceID, 1),
		SourceID:      interval.SourceID,
		Label:         interval.Label,
		Day:           nextDay,
		Start:         0,
		End:           interval.End,
		ContinuesPrev: true,
		Meta:          interval.Meta,
	}

	// A wrap ending at 00:00 leaves nothing on the next day; the tail
	// alone covers the interval.
	if interval.End == 0 {
		return []domain.Segment{tail}
	}

	return []domain.Segment{tail, head}
}
