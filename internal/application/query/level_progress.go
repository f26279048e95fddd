package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// LevelProgressQuery derives a completion percentage from the student's
// self-reported "Level N" progress label. This is a separate notion from
// the lesson-derived progress: it reflects what the student entered on
// the form, not what they have booked.
type LevelProgressQuery struct {
	StudentID student.ID
}

// LevelProgressResult carries the parsed figure.
type LevelProgressResult struct {
	StudentID student.ID `json:"student_id"`

	// Label is the stored progress label the percentage was parsed from.
	Label string `json:"label"`

	// Percent is 10 x N for a "Level N" label.
	Percent int `json:"percent"`
}

// LevelProgressHandler handles the LevelProgressQuery.
type LevelProgressHandler struct {
	students student.Repository
}

// NewLevelProgressHandler creates a new LevelProgressHandler.
func NewLevelProgressHandler(students student.Repository) *LevelProgressHandler {
	return &LevelProgressHandler{students: students}
}

// Handle parses the student's progress label.
// Returns a format error when the label does not match "Level <integer>";
// the computation for that record is aborted.
func (h *LevelProgressHandler) Handle(ctx context.Context, q LevelProgressQuery) (*LevelProgressResult, error) {
	s, err := h.students.GetByID(ctx, q.StudentID)
	if err != nil {
		return nil, err
	}

	percent, err := s.LevelProgress()
	if err != nil {
		return nil, err
	}

	return &LevelProgressResult{
		StudentID: s.ID,
		Label:     s.Progress,
		Percent:   percent,
	}, nil
}
