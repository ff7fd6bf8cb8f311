package repository_test

import (
	"context"
	"testing"

	"arranger/internal/model"
	"arranger/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommentRepository_Upsert(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	commentRepo := repository.NewCommentRepository(gormDB)

	comment := &model.Comment{
		ScheduleID: uuid.New(),
		UserID:     uuid.New(),
		Comment:    "testcomment",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "comments" .* ON CONFLICT .* DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := commentRepo.Upsert(context.Background(), comment)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetByScheduleID(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	commentRepo := repository.NewCommentRepository(gormDB)

	scheduleID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "comments" WHERE schedule_id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"schedule_id", "user_id", "comment"}).
			AddRow(scheduleID.String(), userID.String(), "testcomment"))

	// Act
	comments, err := commentRepo.GetByScheduleID(context.Background(), scheduleID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, userID, comments[0].UserID)
	assert.Equal(t, "testcomment", comments[0].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
