package repository_test

import (
	"context"
	"testing"

	"arranger/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCandidateRepository_GetByScheduleID_OrderedByCandidateID(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	candidateRepo := repository.NewCandidateRepository(gormDB)

	scheduleID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "candidates" WHERE schedule_id = .* ORDER BY candidate_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"candidate_id", "schedule_id", "candidate_name"}).
			AddRow(1, scheduleID.String(), "Mon").
			AddRow(2, scheduleID.String(), "Tue"))

	// Act
	candidates, err := candidateRepo.GetByScheduleID(context.Background(), scheduleID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "Mon", candidates[0].CandidateName)
	assert.Equal(t, "Tue", candidates[1].CandidateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_GetByScheduleID_Empty(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	candidateRepo := repository.NewCandidateRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "candidates" WHERE schedule_id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"candidate_id", "schedule_id", "candidate_name"}))

	// Act
	candidates, err := candidateRepo.GetByScheduleID(context.Background(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, candidates)
	assert.NoError(t, mock.ExpectationsWereMet())
}
