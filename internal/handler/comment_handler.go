package handler

import (
	"net/http"

	"arranger/internal/model"
	"arranger/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	repo repository.CommentRepositoryInterface
}

func NewCommentHandler(repo repository.CommentRepositoryInterface) *CommentHandler {
	return &CommentHandler{repo: repo}
}

type UpdateCommentRequest struct {
	Comment string `form:"comment" json:"comment"`
}

// Update upserts the user's comment on a schedule and echoes the stored text.
func (h *CommentHandler) Update(c *gin.Context) {
	if _, _, ok := authenticatedUser(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	scheduleID, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := &model.Comment{
		ScheduleID: scheduleID,
		UserID:     userID,
		Comment:    req.Comment,
	}

	if err := h.repo.Upsert(c.Request.Context(), comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"comment": comment.Comment,
	})
}
