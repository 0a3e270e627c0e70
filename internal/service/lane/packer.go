package lane

import (
	"sort"

	"github.com/velochron/planline/internal/domain"
)

// DefaultMinWidthPct is the visibility threshold below which a segment is
// too narrow to render at the current scale.
const DefaultMinWidthPct = 0.1

// Options fixes the minute window the segments are laid out against.
type Options struct {
	RangeStart domain.TimeOfDay
	RangeEnd   domain.TimeOfDay

	// MinWidthPct drops segments at or below this width from the packed
	// output. Zero means DefaultMinWidthPct; a negative value disables
	// the filter. Rendering-only: source segments are never deleted.
	MinWidthPct float64

	// SortKey overrides the packing order. Defaults to the clamped start
	// minute; ties keep input order (the sort is stable).
	SortKey func(domain.Segment) int
}

// Result carries the packed segments and the number of lanes the caller
// must size the rendering area for.
type Result struct {
	Segments  []domain.LaneSegment
	LaneCount int
}

// Packer assigns segments to rendering lanes so that no two segments in a
// lane overlap, using the minimum possible number of lanes.
type Packer struct{}

func NewPacker() *Packer {
	return &Packer{}
}

// Pack lays segments into lanes for one (RangeStart, RangeEnd) window.
//
// Each segment is clamped to the window and positioned as a percentage of
// it; sub-threshold segments are dropped. The remainder are sorted and
// placed greedily into the lowest-indexed lane whose last segment ended at
// or before the new segment's start. Reusing the earliest-freed lane first
// makes the lane count equal the maximum number of segments overlapping at
// any instant, which is minimal.
//
// Deterministic for a given input order. Empty input packs to zero lanes.
func (p *Packer) Pack(segments []domain.Segment, opts Options) Result {
	rangeStart, rangeEnd := opts.RangeStart, opts.RangeEnd
	if rangeEnd <= rangeStart {
		rangeStart, rangeEnd = 0, domain.MinutesPerDay
	}
	span := float64(rangeEnd - rangeStart)

	minWidth := opts.MinWidthPct
	if minWidth == 0 {
		minWidth = DefaultMinWidthPct
	}

	visible := make([]domain.LaneSegment, 0, len(segments))
	for _, seg := range segments {
		start := seg.Start.Clamp(rangeStart, rangeEnd)
		end := seg.End.Clamp(rangeStart, rangeEnd)

		widthPct := float64(end-start) / span * 100
		if widthPct <= minWidth {
			continue
		}

		clamped := seg
		clamped.Start = start
		clamped.End = end
		visible = append(visible, domain.LaneSegment{
			Segment:  clamped,
			LeftPct:  float64(start-rangeStart) / span * 100,
			WidthPct: widthPct,
		})
	}

	sortKey := opts.SortKey
	if sortKey == nil {
		sortKey = func(s domain.Segment) int { return int(s.Start) }
	}
	sort.SliceStable(visible, func(a, b int) bool {
		return sortKey(visible[a].Segment) < sortKey(visible[b].Segment)
	})

	// lanesEnd[i] is the end minute of the last segment placed in lane i.
	var lanesEnd []domain.TimeOfDay
	for i := range visible {
		seg := &visible[i]

		assigned := -1
		for lane, endAt := range lanesEnd {
			if endAt <= seg.Start {
				assigned = lane
				break
			}
		}
		if assigned < 0 {
			assigned = len(lanesEnd)
			lanesEnd = append(lanesEnd, 0)
		}

		seg.Lane = assigned
		lanesEnd[assigned] = seg.End
	}

	return Result{
		Segments:  visible,
		LaneCount: len(lanesEnd),
	}
}
