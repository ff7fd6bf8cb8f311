package model

import "github.com/google/uuid"

// Availability values. The UI owns the exact meaning; a missing row
// is equivalent to Absent.
const (
	Absent    = 0
	Undecided = 1
	Present   = 2
)

type Availability struct {
	ScheduleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_availability_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_availability_key"`
	CandidateID  uint      `gorm:"not null;uniqueIndex:idx_availability_key"`
	Availability int       `gorm:"not null;default:0"`

	User User `gorm:"foreignKey:UserID"`
}
