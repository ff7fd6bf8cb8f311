package model

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	ScheduleID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScheduleName string    `gorm:"type:varchar(255);not null"`
	Memo         string    `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner User `gorm:"foreignKey:CreatedBy"`
}
