package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (t *Timestamps) AfterFind(_ *gorm.DB) (err error) {
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
	return nil
}

// ParseID parses a resource ID from its string representation.
//
// IDs are positive integers. Everything else, including numbers that do
// not fit into an int64, cannot reference a resource and is reported as
// not found.
func ParseID(resource, s string) (uint, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound(resource, strconv.Quote(s))
	}

	return uint(id), nil
}
