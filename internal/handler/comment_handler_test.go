package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"arranger/internal/handler"
	"arranger/internal/middleware"
	"arranger/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCommentTest(viewerID uuid.UUID) (*gin.Engine, *MockCommentRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockCommentRepository)
	h := handler.NewCommentHandler(mockRepo)

	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, viewerID)
		c.Set(middleware.UsernameKey, "testuser")
	})
	r.POST("/schedules/:scheduleId/users/:userId/comments", h.Update)

	return r, mockRepo
}

func TestUpdateComment_UpsertsAndEchoes(t *testing.T) {
	// Arrange
	viewerID := uuid.New()
	router, mockRepo := setupCommentTest(viewerID)

	scheduleID := uuid.New()

	var stored *model.Comment
	mockRepo.
		On("Upsert", mock.Anything, mock.AnythingOfType("*model.Comment")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Comment)
		}).
		Return(nil)

	// Act
	path := "/schedules/" + scheduleID.String() + "/users/" + viewerID.String() + "/comments"
	resp := postForm(router, path, url.Values{"comment": {"testcomment"}})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"OK","comment":"testcomment"}`, resp.Body.String())
	assert.Equal(t, scheduleID, stored.ScheduleID)
	assert.Equal(t, viewerID, stored.UserID)
	assert.Equal(t, "testcomment", stored.Comment)
	mockRepo.AssertExpectations(t)
}

func TestUpdateComment_BadScheduleID(t *testing.T) {
	// Arrange
	viewerID := uuid.New()
	router, mockRepo := setupCommentTest(viewerID)

	// Act
	path := "/schedules/not-a-uuid/users/" + viewerID.String() + "/comments"
	resp := postForm(router, path, url.Values{"comment": {"testcomment"}})

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
