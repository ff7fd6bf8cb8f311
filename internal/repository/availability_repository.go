package repository

import (
	"context"

	"arranger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

type AvailabilityRepositoryInterface interface {
	Upsert(ctx context.Context, availability *model.Availability) error
	GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) ([]model.Availability, error)
}

var _ AvailabilityRepositoryInterface = (*AvailabilityRepository)(nil)

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert writes the availability for one (schedule, user, candidate) triple,
// overwriting any previous value.
func (r *AvailabilityRepository) Upsert(ctx context.Context, availability *model.Availability) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "schedule_id"},
			{Name: "user_id"},
			{Name: "candidate_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"availability"}),
	}).Create(availability).Error
}

// GetByScheduleID returns every availability row of the schedule with its user
// loaded, ordered by username and then candidate for stable display.
func (r *AvailabilityRepository) GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) ([]model.Availability, error) {
	var availabilities []model.Availability
	err := r.db.WithContext(ctx).
		Joins("User").
		Where("availabilities.schedule_id = ?", scheduleID).
		Order("\"User\".username ASC, availabilities.candidate_id ASC").
		Find(&availabilities).Error
	return availabilities, err
}
