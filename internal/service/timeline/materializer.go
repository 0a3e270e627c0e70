package timeline

import (
	"fmt"
	"sort"

	"github.com/velochron/planline/internal/domain"
	"github.com/velochron/planline/internal/service/segment"
)

// Day is one calendar day of the materialized planning view: its schedule
// record (synthesized when absent) and the segments owned by the day,
// ordered by start time.
type Day struct {
	Date     domain.DayDate
	Schedule *domain.DaySchedule
	Segments []domain.Segment
}

// Materializer expands a date window into a dense, ordered list of days
// and assigns split segments to their owning day.
type Materializer struct {
	splitter *segment.Splitter
}

func NewMaterializer(splitter *segment.Splitter) *Materializer {
	return &Materializer{splitter: splitter}
}

// Materialize builds the day list for [start, end] inclusive. Days without
// a stored schedule get a synthesized unknown record so the output has no
// gaps. Segments landing outside the window are dropped; that is expected
// at window edges, not an error. Fails with ErrInvalidRange when end
// precedes start and produces no partial output.
func (m *Materializer) Materialize(start, end domain.DayDate, schedules map[domain.DayDate]*domain.DaySchedule) ([]Day, error) {
	if end < start {
		return nil, fmt.Errorf("%w: %s..%s", domain.ErrInvalidRange, start, end)
	}

	index := make(map[domain.DayDate]int)
	var days []Day
	for date := start; date <= end; date = date.Next() {
		schedule, ok := schedules[date]
		if !ok {
			schedule = domain.UnknownDaySchedule(date)
		}
		index[date] = len(days)
		days = append(days, Day{Date: date, Schedule: schedule})
	}

	// Split every stored day's intervals, including days outside the
	// window: an overnight interval anchored to the day before start
	// still owns a head segment inside it.
	for anchor, schedule := range schedules {
		for _, interval := range schedule.Tranches {
			for _, seg := range m.splitter.Split(anchor, interval) {
				i, ok := index[seg.Day]
				if !ok {
					continue
				}
				days[i].Segments = append(days[i].Segments, seg)
			}
		}
	}

	for i := range days {
		segs := days[i].Segments
		sort.Slice(segs, func(a, b int) bool {
			if segs[a].Start != segs[b].Start {
				return segs[a].Start < segs[b].Start
			}
			return segs[a].SourceID < segs[b].SourceID
		})
	}

	return days, nil
}
