package repository

import (
	"context"

	"arranger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

type CommentRepositoryInterface interface {
	Upsert(ctx context.Context, comment *model.Comment) error
	GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) ([]model.Comment, error)
}

var _ CommentRepositoryInterface = (*CommentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Upsert writes the user's comment on the schedule; last write wins.
func (r *CommentRepository) Upsert(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "schedule_id"},
			{Name: "user_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"comment"}),
	}).Create(comment).Error
}

func (r *CommentRepository) GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Find(&comments).Error
	return comments, err
}
