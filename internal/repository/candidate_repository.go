package repository

import (
	"context"

	"arranger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

type CandidateRepositoryInterface interface {
	GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) ([]model.Candidate, error)
}

var _ CandidateRepositoryInterface = (*CandidateRepository)(nil)

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("candidate_id ASC").
		Find(&candidates).Error
	return candidates, err
}
