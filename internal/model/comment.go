package model

import "github.com/google/uuid"

// Comment holds one comment per user per schedule; updates overwrite.
type Comment struct {
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comment_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comment_key"`
	Comment    string    `gorm:"type:text;not null"`
}
