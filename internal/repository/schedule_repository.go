package repository

import (
	"context"
	"errors"

	"arranger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

type ScheduleRepositoryInterface interface {
	CreateWithCandidates(ctx context.Context, schedule *model.Schedule, candidates []model.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	UpdateWithCandidates(ctx context.Context, schedule *model.Schedule, candidates []model.Candidate) error
}

var _ ScheduleRepositoryInterface = (*ScheduleRepository)(nil)

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// CreateWithCandidates inserts the schedule and its candidates in a single
// transaction, so a failed candidate insert never leaves an orphaned schedule.
func (r *ScheduleRepository) CreateWithCandidates(ctx context.Context, schedule *model.Schedule, candidates []model.Candidate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}
		if len(candidates) > 0 {
			if err := tx.Create(&candidates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("schedule_id = ?", id).
		Order("updated_at DESC").
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateWithCandidates saves the schedule row and appends any new candidates
// in the same transaction. Existing candidates are never touched.
func (r *ScheduleRepository) UpdateWithCandidates(ctx context.Context, schedule *model.Schedule, candidates []model.Candidate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner").Save(schedule).Error; err != nil {
			return err
		}
		if len(candidates) > 0 {
			if err := tx.Create(&candidates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
