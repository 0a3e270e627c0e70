package timeline

import (
	"errors"
	"testing"

	"github.com/velochron/planline/internal/domain"
	"github.com/velochron/planline/internal/service/segment"
)

func newMaterializer() *Materializer {
	return NewMaterializer(segment.NewSplitter())
}

func TestMaterializer_DenseWindow(t *testing.T) {
	m := newMaterializer()

	// Sparse input: only one of five days has a stored schedule.
	schedules := map[domain.DayDate]*domain.DaySchedule{
		"2025-01-03": {
			Day:  "2025-01-03",
			Kind: domain.DayKindWorking,
		},
	}

	days, err := m.Materialize("2025-01-01", "2025-01-05", schedules)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if len(days) != 5 {
		t.Fatalf("Materialize() produced %d days, want 5", len(days))
	}

	wantDates := []domain.DayDate{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05"}
	for i, want := range wantDates {
		if days[i].Date != want {
			t.Errorf("days[%d].Date = %q, want %q", i, days[i].Date, want)
		}
		if days[i].Schedule == nil {
			t.Fatalf("days[%d].Schedule is nil", i)
		}
	}

	if days[2].Schedule.Kind != domain.DayKindWorking {
		t.Errorf("stored day kind = %q, want working", days[2].Schedule.Kind)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if days[i].Schedule.Kind != domain.DayKindUnknown {
			t.Errorf("days[%d] kind = %q, want unknown", i, days[i].Schedule.Kind)
		}
	}
}

func TestMaterializer_InvalidRange(t *testing.T) {
	m := newMaterializer()

	days, err := m.Materialize("2025-01-05", "2025-01-01", nil)
	if !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("Materialize() error = %v, want ErrInvalidRange", err)
	}
	if days != nil {
		t.Errorf("Materialize() = %v, want no partial output", days)
	}
}

func TestMaterializer_OvernightAssignment(t *testing.T) {
	m := newMaterializer()

	schedules := map[domain.DayDate]*domain.DaySchedule{
		"2025-03-10": {
			Day:  "2025-03-10",
			Kind: domain.DayKindWorking,
			Tranches: []domain.RawInterval{
				{SourceID: 1, Label: "Night", Start: 1320, End: 360}, // 22:00-06:00
			},
		},
	}

	days, err := m.Materialize("2025-03-10", "2025-03-11", schedules)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if len(days[0].Segments) != 1 || len(days[1].Segments) != 1 {
		t.Fatalf("segment counts = (%d, %d), want (1, 1)", len(days[0].Segments), len(days[1].Segments))
	}

	tail := days[0].Segments[0]
	if tail.Start != 1320 || tail.End != domain.MinutesPerDay || !tail.ContinuesNext {
		t.Errorf("tail = [%d, %d) next=%v, want [1320, 1440) next=true", tail.Start, tail.End, tail.ContinuesNext)
	}

	head := days[1].Segments[0]
	if head.Start != 0 || head.End != 360 || !head.ContinuesPrev {
		t.Errorf("head = [%d, %d) prev=%v, want [0, 360) prev=true", head.Start, head.End, head.ContinuesPrev)
	}
}

func TestMaterializer_OutOfWindowDrop(t *testing.T) {
	m := newMaterializer()

	schedules := map[domain.DayDate]*domain.DaySchedule{
		// Overnight on the last requested day spills past the window.
		"2025-03-11": {
			Day:  "2025-03-11",
			Kind: domain.DayKindWorking,
			Tranches: []domain.RawInterval{
				{SourceID: 2, Start: 1320, End: 360},
			},
		},
		// Overnight the day before the window owns a head inside it.
		"2025-03-09": {
			Day:  "2025-03-09",
			Kind: domain.DayKindWorking,
			Tranches: []domain.RawInterval{
				{SourceID: 3, Start: 1380, End: 300},
			},
		},
	}

	days, err := m.Materialize("2025-03-10", "2025-03-11", schedules)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("Materialize() produced %d days, want 2", len(days))
	}

	// 2025-03-10 holds only the head spilling in from 2025-03-09.
	if len(days[0].Segments) != 1 {
		t.Fatalf("2025-03-10 has %d segments, want 1", len(days[0].Segments))
	}
	if got := days[0].Segments[0]; got.SourceID != 3 || got.Start != 0 || got.End != 300 {
		t.Errorf("spill-in segment = source %d [%d, %d), want source 3 [0, 300)", got.SourceID, got.Start, got.End)
	}

	// 2025-03-11 keeps its tail; the head for 2025-03-12 is dropped.
	if len(days[1].Segments) != 1 {
		t.Fatalf("2025-03-11 has %d segments, want 1", len(days[1].Segments))
	}
	if got := days[1].Segments[0]; got.SourceID != 2 || got.End != domain.MinutesPerDay {
		t.Errorf("tail segment = source %d end %d, want source 2 end 1440", got.SourceID, got.End)
	}
}

func TestMaterializer_SegmentOrdering(t *testing.T) {
	m := newMaterializer()

	schedules := map[domain.DayDate]*domain.DaySchedule{
		"2025-03-10": {
			Day: "2025-03-10",
			Tranches: []domain.RawInterval{
				{SourceID: 9, Start: 540, End: 600},
				{SourceID: 2, Start: 480, End: 720},
				{SourceID: 5, Start: 480, End: 540},
			},
		},
	}

	days, err := m.Materialize("2025-03-10", "2025-03-10", schedules)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	segs := days[0].Segments
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}

	// Start ascending, ties broken by source id.
	wantOrder := []int64{2, 5, 9}
	for i, want := range wantOrder {
		if segs[i].SourceID != want {
			t.Errorf("segs[%d].SourceID = %d, want %d", i, segs[i].SourceID, want)
		}
	}
}
