package stub

import (
	"sort"
	"sync"
)

// DayStorage holds seeded violations in memory, keyed by run id so
// concurrent load-test runs stay isolated.
type DayStorage struct {
	mu   sync.RWMutex
	runs map[string]map[string][]ViolationRecord
}

func NewDayStorage() *DayStorage {
	return &DayStorage{
		runs: make(map[string]map[string][]ViolationRecord),
	}
}

func (s *DayStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.runs, runID)
}

func (s *DayStorage) Add(runID string, records []ViolationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, ok := s.runs[runID]
	if !ok {
		days = make(map[string][]ViolationRecord)
		s.runs[runID] = days
	}

	for _, record := range records {
		days[record.DayDate] = append(days[record.DayDate], record)
	}
}

// GetRange returns all violations with start <= day_date <= end, ordered
// by date then id. DayDate strings compare lexicographically.
func (s *DayStorage) GetRange(runID, start, end string) []ViolationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []ViolationRecord
	for day, records := range s.runs[runID] {
		if day < start || day > end {
			continue
		}
		result = append(result, records...)
	}

	sort.Slice(result, func(a, b int) bool {
		if result[a].DayDate != result[b].DayDate {
			return result[a].DayDate < result[b].DayDate
		}
		return result[a].ID < result[b].ID
	})

	return result
}
