package model

import "github.com/google/uuid"

type Candidate struct {
	CandidateID   uint      `gorm:"primaryKey;autoIncrement"`
	ScheduleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CandidateName string    `gorm:"not null"`
}
