package handler

import (
	"net/http"
	"strings"
	"time"

	"arranger/internal/model"
	"arranger/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UntitledScheduleName substitutes for an empty schedule name.
const UntitledScheduleName = "(untitled)"

const maxScheduleNameLength = 255

// Not-found and not-owner deliberately share one message so that callers
// cannot probe for schedules owned by other users.
const scheduleNotFoundMessage = "Schedule not found or you are not allowed to edit it"

type ScheduleHandler struct {
	scheduleRepo     repository.ScheduleRepositoryInterface
	candidateRepo    repository.CandidateRepositoryInterface
	availabilityRepo repository.AvailabilityRepositoryInterface
	commentRepo      repository.CommentRepositoryInterface
}

func NewScheduleHandler(
	scheduleRepo repository.ScheduleRepositoryInterface,
	candidateRepo repository.CandidateRepositoryInterface,
	availabilityRepo repository.AvailabilityRepositoryInterface,
	commentRepo repository.CommentRepositoryInterface,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleRepo:     scheduleRepo,
		candidateRepo:    candidateRepo,
		availabilityRepo: availabilityRepo,
		commentRepo:      commentRepo,
	}
}

type ScheduleRequest struct {
	ScheduleName string `form:"scheduleName" json:"scheduleName"`
	Memo         string `form:"memo" json:"memo"`
	Candidates   string `form:"candidates" json:"candidates"`
}

type ScheduleResponse struct {
	ScheduleID   string `json:"scheduleId"`
	ScheduleName string `json:"scheduleName"`
	Memo         string `json:"memo"`
	CreatedBy    string `json:"createdBy"`
	Owner        string `json:"owner,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

type CandidateResponse struct {
	CandidateID   uint   `json:"candidateId"`
	CandidateName string `json:"candidateName"`
}

type ScheduleDetailResponse struct {
	Schedule       ScheduleResponse           `json:"schedule"`
	Candidates     []CandidateResponse        `json:"candidates"`
	Users          []ScheduleUser             `json:"users"`
	Availabilities map[uuid.UUID]map[uint]int `json:"availabilities"`
	Comments       map[uuid.UUID]string       `json:"comments"`
}

type ScheduleEditResponse struct {
	Schedule   ScheduleResponse    `json:"schedule"`
	Candidates []CandidateResponse `json:"candidates"`
}

// ParseCandidateNames splits the multi-line candidates field into trimmed,
// non-empty names, preserving input order.
func ParseCandidateNames(raw string) []string {
	names := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NormalizeScheduleName truncates the name to 255 characters and substitutes
// a placeholder when it is empty.
func NormalizeScheduleName(name string) string {
	if runes := []rune(name); len(runes) > maxScheduleNameLength {
		name = string(runes[:maxScheduleNameLength])
	}
	if name == "" {
		return UntitledScheduleName
	}
	return name
}

// isOwner is the single ownership policy: only the creator may edit or extend
// a schedule.
func isOwner(schedule *model.Schedule, userID uuid.UUID) bool {
	return schedule != nil && schedule.CreatedBy == userID
}

// New echoes the authenticated user for new-schedule form population. No data
// access happens here.
func (h *ScheduleHandler) New(c *gin.Context) {
	userID, username, ok := authenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": UserResponse{ID: userID.String(), Username: username},
	})
}

// Create stores a new schedule with its candidates and redirects to the
// detail location.
func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, _, ok := authenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	schedule := &model.Schedule{
		ScheduleID:   uuid.New(),
		ScheduleName: NormalizeScheduleName(req.ScheduleName),
		Memo:         req.Memo,
		CreatedBy:    userID,
		UpdatedAt:    time.Now(),
	}

	candidates := candidateRows(ParseCandidateNames(req.Candidates), schedule.ScheduleID)

	if err := h.scheduleRepo.CreateWithCandidates(c.Request.Context(), schedule, candidates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.Redirect(http.StatusFound, "/schedules/"+schedule.ScheduleID.String())
}

// GetByID returns the aggregated detail view of a schedule. Any authenticated
// user may view; only existence is checked.
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	userID, username, ok := authenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	scheduleID, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	schedule, err := h.scheduleRepo.GetByID(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	candidates, err := h.candidateRepo.GetByScheduleID(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve candidates"})
		return
	}

	availabilities, err := h.availabilityRepo.GetByScheduleID(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve availabilities"})
		return
	}

	comments, err := h.commentRepo.GetByScheduleID(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	users, matrix, commentMap := BuildScheduleView(userID, username, candidates, availabilities, comments)

	c.JSON(http.StatusOK, ScheduleDetailResponse{
		Schedule:       scheduleResponse(schedule),
		Candidates:     candidateResponses(candidates),
		Users:          users,
		Availabilities: matrix,
		Comments:       commentMap,
	})
}

// Edit returns the schedule and its candidates for edit-form population.
// Missing schedules and schedules owned by someone else are indistinguishable.
func (h *ScheduleHandler) Edit(c *gin.Context) {
	userID, _, ok := authenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	schedule, ok := h.ownedSchedule(c, userID)
	if !ok {
		return
	}

	candidates, err := h.candidateRepo.GetByScheduleID(c.Request.Context(), schedule.ScheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve candidates"})
		return
	}

	c.JSON(http.StatusOK, ScheduleEditResponse{
		Schedule:   scheduleResponse(schedule),
		Candidates: candidateResponses(candidates),
	})
}

// Update overwrites the schedule's name and memo and appends any new
// candidates, then redirects to the detail location. Requires the literal
// query flag edit=1.
func (h *ScheduleHandler) Update(c *gin.Context) {
	userID, _, ok := authenticatedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	schedule, ok := h.ownedSchedule(c, userID)
	if !ok {
		return
	}

	if c.Query("edit") != "1" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	schedule.ScheduleName = NormalizeScheduleName(req.ScheduleName)
	schedule.Memo = req.Memo
	schedule.CreatedBy = userID
	schedule.UpdatedAt = time.Now()

	candidates := candidateRows(ParseCandidateNames(req.Candidates), schedule.ScheduleID)

	if err := h.scheduleRepo.UpdateWithCandidates(c.Request.Context(), schedule, candidates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}

	c.Redirect(http.StatusFound, "/schedules/"+schedule.ScheduleID.String())
}

// ownedSchedule loads the schedule from the path parameter and enforces the
// ownership policy, writing the shared 404 on any failure.
func (h *ScheduleHandler) ownedSchedule(c *gin.Context, userID uuid.UUID) (*model.Schedule, bool) {
	scheduleID, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": scheduleNotFoundMessage})
		return nil, false
	}

	schedule, err := h.scheduleRepo.GetByID(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		return nil, false
	}
	if !isOwner(schedule, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": scheduleNotFoundMessage})
		return nil, false
	}
	return schedule, true
}

func candidateRows(names []string, scheduleID uuid.UUID) []model.Candidate {
	candidates := make([]model.Candidate, len(names))
	for i, name := range names {
		candidates[i] = model.Candidate{
			ScheduleID:    scheduleID,
			CandidateName: name,
		}
	}
	return candidates
}

func scheduleResponse(s *model.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:   s.ScheduleID.String(),
		ScheduleName: s.ScheduleName,
		Memo:         s.Memo,
		CreatedBy:    s.CreatedBy.String(),
		Owner:        s.Owner.Username,
		UpdatedAt:    s.UpdatedAt.Format(http.TimeFormat),
	}
}

func candidateResponses(candidates []model.Candidate) []CandidateResponse {
	response := make([]CandidateResponse, len(candidates))
	for i, candidate := range candidates {
		response[i] = CandidateResponse{
			CandidateID:   candidate.CandidateID,
			CandidateName: candidate.CandidateName,
		}
	}
	return response
}
