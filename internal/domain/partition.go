package domain

import "strconv"

// Partition is the isolated set of events owned by one chat user.
// It is derived from the user id alone, so deriving it again yields the same value.
type Partition struct {
	UserID int64
}

// PartitionFor returns the partition of a user
func PartitionFor(userID int64) Partition {
	return Partition{UserID: userID}
}

// Key returns a stable name for the partition, used in logs
func (p Partition) Key() string {
	return "calendar_" + strconv.FormatInt(p.UserID, 10)
}
