package handler

import (
	"net/http"
	"strconv"

	"arranger/internal/model"
	"arranger/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	repo repository.AvailabilityRepositoryInterface
}

func NewAvailabilityHandler(repo repository.AvailabilityRepositoryInterface) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo}
}

type UpdateAvailabilityRequest struct {
	Availability int `form:"availability" json:"availability"`
}

// Update upserts one availability cell and echoes the stored value.
func (h *AvailabilityHandler) Update(c *gin.Context) {
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

	candidateID, err := strconv.ParseUint(c.Param("candidateId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	availability := &model.Availability{
		ScheduleID:   scheduleID,
		UserID:       userID,
		CandidateID:  uint(candidateID),
		Availability: req.Availability,
	}

	if err := h.repo.Upsert(c.Request.Context(), availability); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "OK",
		"availability": availability.Availability,
	})
}
