package postgres

import (
	"database/sql"

	"calendarbot/internal/domain"
)

// PartitionRepo implements repository.PartitionRepository
type PartitionRepo struct {
	db *sql.DB
}

// NewPartitionRepo creates a new partition repository
func NewPartitionRepo(db *sql.DB) *PartitionRepo {
	return &PartitionRepo{db: db}
}

// EnsurePartition creates the user's partition row if it doesn't exist yet
func (r *PartitionRepo) EnsurePartition(userID int64) (domain.Partition, error) {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(query, userID); err != nil {
		return domain.Partition{}, err
	}
	return domain.PartitionFor(userID), nil
}
