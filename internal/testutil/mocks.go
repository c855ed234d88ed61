package testutil

import (
	"calendarbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPartitionRepository is a mock for PartitionRepository
type MockPartitionRepository struct {
	mock.Mock
}

func (m *MockPartitionRepository) EnsurePartition(userID int64) (domain.Partition, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Partition), args.Error(1)
}

// MockEventRepository is a mock for EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Insert(p domain.Partition, date domain.CalendarDate, description string) error {
	args := m.Called(p, date, description)
	return args.Error(0)
}

func (m *MockEventRepository) QueryRange(p domain.Partition, mode domain.ListMode, today domain.CalendarDate) ([]domain.Event, error) {
	args := m.Called(p, mode, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListAll(p domain.Partition) ([]domain.Event, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) DeleteByDate(p domain.Partition, date domain.CalendarDate) (int64, error) {
	args := m.Called(p, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) DeleteByDescription(p domain.Partition, description string) (int64, error) {
	args := m.Called(p, description)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) DeleteByDateAndDescription(p domain.Partition, date domain.CalendarDate, description string) (int64, error) {
	args := m.Called(p, date, description)
	return args.Get(0).(int64), args.Error(1)
}
