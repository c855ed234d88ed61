package testutil

import (
	"sort"
	"sync"

	"calendarbot/internal/domain"
)

// MemoryStore is an in-memory implementation of both repositories,
// used where a test needs state to persist across several commands
type MemoryStore struct {
	mu         sync.Mutex
	nextID     int64
	partitions map[int64]bool
	events     []domain.Event
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{partitions: make(map[int64]bool)}
}

func (s *MemoryStore) EnsurePartition(userID int64) (domain.Partition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partitions[userID] = true
	return domain.PartitionFor(userID), nil
}

// HasPartition reports whether EnsurePartition was called for the user
func (s *MemoryStore) HasPartition(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partitions[userID]
}

func (s *MemoryStore) Insert(p domain.Partition, date domain.CalendarDate, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.events = append(s.events, domain.Event{
		ID:          s.nextID,
		UserID:      p.UserID,
		Date:        date,
		Description: description,
	})
	return nil
}

func (s *MemoryStore) QueryRange(p domain.Partition, mode domain.ListMode, today domain.CalendarDate) ([]domain.Event, error) {
	return s.filter(p, func(e domain.Event) bool {
		return mode.Contains(e.Date, today)
	}), nil
}

func (s *MemoryStore) ListAll(p domain.Partition) ([]domain.Event, error) {
	return s.filter(p, func(domain.Event) bool { return true }), nil
}

func (s *MemoryStore) DeleteByDate(p domain.Partition, date domain.CalendarDate) (int64, error) {
	return s.delete(p, func(e domain.Event) bool { return e.Date == date }), nil
}

func (s *MemoryStore) DeleteByDescription(p domain.Partition, description string) (int64, error) {
	return s.delete(p, func(e domain.Event) bool { return e.Description == description }), nil
}

func (s *MemoryStore) DeleteByDateAndDescription(p domain.Partition, date domain.CalendarDate, description string) (int64, error) {
	return s.delete(p, func(e domain.Event) bool {
		return e.Date == date && e.Description == description
	}), nil
}

// Count returns the number of stored events of a user
func (s *MemoryStore) Count(userID int64) int {
	events, _ := s.ListAll(domain.PartitionFor(userID))
	return len(events)
}

func (s *MemoryStore) filter(p domain.Partition, keep func(domain.Event) bool) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Event
	for _, e := range s.events {
		if e.UserID == p.UserID && keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (s *MemoryStore) delete(p domain.Partition, match func(domain.Event) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	var removed int64
	for _, e := range s.events {
		if e.UserID == p.UserID && match(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return removed
}
