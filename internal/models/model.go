package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model for all records.
//
// IDs are assigned by the store, never by the database, since they are
// sequences per department and record family.
type Model struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement:false" example:"3"` // Sequence number of the record within its department
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T09:28:44.491514Z"`      // Time the record was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-17T20:14:01.048145Z"`      // Last time the record was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *Model) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// Family identifies one of the two record families a department owns.
type Family string

const (
	FamilyTransaction Family = "transactions"
	FamilyMinistry    Family = "ministry-items"
)
