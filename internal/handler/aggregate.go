package handler

import (
	"arranger/internal/model"

	"github.com/google/uuid"
)

// ScheduleUser is one participant row of the detail view. The viewer is always
// included and flagged with IsSelf.
type ScheduleUser struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	IsSelf   bool      `json:"isSelf"`
}

// BuildScheduleView aggregates availability rows into the dense per-user,
// per-candidate matrix shown on the schedule page.
//
// The participant list starts with the viewer and is extended with every
// distinct user found in the availability rows, in first-appearance order.
// Every (user, candidate) cell of the matrix is then filled, defaulting to 0
// where no row was recorded. Comments collapse to one per user, last wins.
func BuildScheduleView(
	viewerID uuid.UUID,
	viewerName string,
	candidates []model.Candidate,
	availabilities []model.Availability,
	comments []model.Comment,
) (users []ScheduleUser, matrix map[uuid.UUID]map[uint]int, commentMap map[uuid.UUID]string) {
	matrix = make(map[uuid.UUID]map[uint]int)
	for _, a := range availabilities {
		row, ok := matrix[a.UserID]
		if !ok {
			row = make(map[uint]int)
			matrix[a.UserID] = row
		}
		row[a.CandidateID] = a.Availability
	}

	users = []ScheduleUser{{UserID: viewerID, Username: viewerName, IsSelf: true}}
	seen := map[uuid.UUID]bool{viewerID: true}
	for _, a := range availabilities {
		if seen[a.UserID] {
			continue
		}
		seen[a.UserID] = true
		users = append(users, ScheduleUser{
			UserID:   a.UserID,
			Username: a.User.Username,
			IsSelf:   a.UserID == viewerID,
		})
	}

	for _, u := range users {
		row, ok := matrix[u.UserID]
		if !ok {
			row = make(map[uint]int)
			matrix[u.UserID] = row
		}
		for _, c := range candidates {
			if _, ok := row[c.CandidateID]; !ok {
				row[c.CandidateID] = model.Absent
			}
		}
	}

	commentMap = make(map[uuid.UUID]string)
	for _, c := range comments {
		commentMap[c.UserID] = c.Comment
	}
	return users, matrix, commentMap
}
