package lane

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/velochron/planline/internal/domain"
)

func seg(id int64, start, end domain.TimeOfDay) domain.Segment {
	return domain.Segment{
		Key:      fmt.Sprintf("2025-03-10/%d/0", id),
		SourceID: id,
		Day:      "2025-03-10",
		Start:    start,
		End:      end,
	}
}

func TestPacker_Pack_LaneReuse(t *testing.T) {
	packer := NewPacker()

	// 08:00-12:00, 09:00-10:00, 11:00-13:00: the third segment starts
	// after lane 1 freed at 10:00, so it reuses lane 1.
	result := packer.Pack([]domain.Segment{
		seg(1, 480, 720),
		seg(2, 540, 600),
		seg(3, 660, 780),
	}, Options{})

	if result.LaneCount != 2 {
		t.Fatalf("LaneCount = %d, want 2", result.LaneCount)
	}

	wantLanes := map[int64]int{1: 0, 2: 1, 3: 1}
	for _, ls := range result.Segments {
		if want := wantLanes[ls.SourceID]; ls.Lane != want {
			t.Errorf("segment %d assigned lane %d, want %d", ls.SourceID, ls.Lane, want)
		}
	}
}

func TestPacker_Pack_Geometry(t *testing.T) {
	packer := NewPacker()

	// 06:00-18:00 window; 09:00-12:00 sits a quarter in, a quarter wide.
	result := packer.Pack([]domain.Segment{
		seg(1, 540, 720),
	}, Options{RangeStart: 360, RangeEnd: 1080})

	if len(result.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(result.Segments))
	}

	ls := result.Segments[0]
	if math.Abs(ls.LeftPct-25) > 1e-9 {
		t.Errorf("LeftPct = %f, want 25", ls.LeftPct)
	}
	if math.Abs(ls.WidthPct-25) > 1e-9 {
		t.Errorf("WidthPct = %f, want 25", ls.WidthPct)
	}
}

func TestPacker_Pack_ClampToWindow(t *testing.T) {
	packer := NewPacker()

	// Segment overhangs both window edges; it clamps to the full window.
	result := packer.Pack([]domain.Segment{
		seg(1, 0, domain.MinutesPerDay),
	}, Options{RangeStart: 480, RangeEnd: 1080})

	if len(result.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(result.Segments))
	}

	ls := result.Segments[0]
	if ls.Start != 480 || ls.End != 1080 {
		t.Errorf("clamped interval = [%d, %d), want [480, 1080)", ls.Start, ls.End)
	}
	if ls.LeftPct != 0 || math.Abs(ls.WidthPct-100) > 1e-9 {
		t.Errorf("geometry = (%f, %f), want (0, 100)", ls.LeftPct, ls.WidthPct)
	}
}

func TestPacker_Pack_MinWidthFilter(t *testing.T) {
	packer := NewPacker()

	segments := []domain.Segment{
		seg(1, 0, 1),  // ~0.069% of a full day, below the default threshold
		seg(2, 0, 60), // clearly visible
	}

	result := packer.Pack(segments, Options{})
	if len(result.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(result.Segments))
	}
	if result.Segments[0].SourceID != 2 {
		t.Errorf("kept segment %d, want 2", result.Segments[0].SourceID)
	}

	// A negative threshold disables the filter.
	result = packer.Pack(segments, Options{MinWidthPct: -1})
	if len(result.Segments) != 2 {
		t.Errorf("with filter disabled got %d segments, want 2", len(result.Segments))
	}
}

func TestPacker_Pack_EmptyInput(t *testing.T) {
	packer := NewPacker()

	result := packer.Pack(nil, Options{})
	if result.LaneCount != 0 {
		t.Errorf("LaneCount = %d, want 0", result.LaneCount)
	}
	if len(result.Segments) != 0 {
		t.Errorf("got %d segments, want 0", len(result.Segments))
	}
}

func TestPacker_Pack_InjectableSortKey(t *testing.T) {
	packer := NewPacker()

	segments := []domain.Segment{
		seg(1, 480, 600),
		seg(2, 480, 600),
	}

	// Identical intervals: lane order follows the packing order, so a
	// reversed key flips the assignment.
	result := packer.Pack(segments, Options{
		SortKey: func(s domain.Segment) int { return -int(s.SourceID) },
	})

	for _, ls := range result.Segments {
		switch ls.SourceID {
		case 1:
			if ls.Lane != 1 {
				t.Errorf("segment 1 lane = %d, want 1", ls.Lane)
			}
		case 2:
			if ls.Lane != 0 {
				t.Errorf("segment 2 lane = %d, want 0", ls.Lane)
			}
		}
	}
}

func TestPacker_Pack_Disjointness(t *testing.T) {
	packer := NewPacker()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		segments := randomSegments(rng, 40)
		result := packer.Pack(segments, Options{MinWidthPct: -1})

		byLane := make(map[int][]domain.LaneSegment)
		for _, ls := range result.Segments {
			byLane[ls.Lane] = append(byLane[ls.Lane], ls)
		}

		for laneID, lsegs := range byLane {
			for i := 0; i < len(lsegs); i++ {
				for j := i + 1; j < len(lsegs); j++ {
					a, b := lsegs[i], lsegs[j]
					if a.Start < b.End && b.Start < a.End {
						t.Fatalf("trial %d: lane %d holds overlapping [%d,%d) and [%d,%d)",
							trial, laneID, a.Start, a.End, b.Start, b.End)
					}
				}
			}
		}
	}
}

// TestPacker_Pack_Minimality checks the lane count equals the maximum
// number of segments overlapping at any single minute, computed by an
// independent sweep.
func TestPacker_Pack_Minimality(t *testing.T) {
	packer := NewPacker()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		segments := randomSegments(rng, 1+rng.Intn(60))
		result := packer.Pack(segments, Options{MinWidthPct: -1})

		if got, want := result.LaneCount, maxOverlap(segments); got != want {
			t.Fatalf("trial %d: LaneCount = %d, max overlap = %d (segments: %v)",
				trial, got, want, segments)
		}
	}
}

func randomSegments(rng *rand.Rand, n int) []domain.Segment {
	segments := make([]domain.Segment, 0, n)
	for i := 0; i < n; i++ {
		start := domain.TimeOfDay(rng.Intn(domain.MinutesPerDay - 1))
		length := 1 + rng.Intn(int(domain.MinutesPerDay-start))
		segments = append(segments, seg(int64(i+1), start, start+domain.TimeOfDay(length)))
	}
	return segments
}

// maxOverlap sweeps minute boundaries to find the peak number of
// simultaneously active segments.
func maxOverlap(segments []domain.Segment) int {
	var delta [domain.MinutesPerDay + 1]int
	for _, s := range segments {
		delta[s.Start]++
		delta[s.End]--
	}

	peak, active := 0, 0
	for _, d := range delta {
		active += d
		if active > peak {
			peak = active
		}
	}
	return peak
}
