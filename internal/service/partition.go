package service

import (
	"fmt"

	"calendarbot/internal/domain"
	"calendarbot/internal/repository"
)

// PartitionService resolves the storage partition of a chat user
type PartitionService struct {
	partitionRepo repository.PartitionRepository
}

// NewPartitionService creates a new partition service
func NewPartitionService(partitionRepo repository.PartitionRepository) *PartitionService {
	return &PartitionService{partitionRepo: partitionRepo}
}

// EnsurePartition creates the user's partition on first use and returns it
func (s *PartitionService) EnsurePartition(userID int64) (domain.Partition, error) {
	p, err := s.partitionRepo.EnsurePartition(userID)
	if err != nil {
		return domain.Partition{}, fmt.Errorf("ensure partition for user %d: %w", userID, err)
	}
	return p, nil
}
