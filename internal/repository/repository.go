package repository

import (
	"calendarbot/internal/domain"
)

// PartitionRepository defines per-user partition operations
type PartitionRepository interface {
	EnsurePartition(userID int64) (domain.Partition, error)
}

// EventRepository defines event data operations, each scoped to one partition
type EventRepository interface {
	Insert(p domain.Partition, date domain.CalendarDate, description string) error
	QueryRange(p domain.Partition, mode domain.ListMode, today domain.CalendarDate) ([]domain.Event, error)
	ListAll(p domain.Partition) ([]domain.Event, error)
	DeleteByDate(p domain.Partition, date domain.CalendarDate) (int64, error)
	DeleteByDescription(p domain.Partition, description string) (int64, error)
	DeleteByDateAndDescription(p domain.Partition, date domain.CalendarDate, description string) (int64, error)
}
