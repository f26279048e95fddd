package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// StudentProgressQuery derives a student's completion percentage from the
// lessons they have taken.
type StudentProgressQuery struct {
	StudentID student.ID
}

// StudentProgressResult carries the derived figure.
type StudentProgressResult struct {
	StudentID student.ID `json:"student_id"`

	// Percent is the milestone of the last recognized lesson in booking
	// order, or 0 when the student has no lessons.
	Percent int `json:"percent"`

	// LessonCount is how many lessons were folded, recognized or not.
	LessonCount int `json:"lesson_count"`
}

// StudentProgressHandler handles the StudentProgressQuery.
type StudentProgressHandler struct {
	lessons lesson.Repository
}

// NewStudentProgressHandler creates a new StudentProgressHandler.
func NewStudentProgressHandler(lessons lesson.Repository) *StudentProgressHandler {
	return &StudentProgressHandler{lessons: lessons}
}

// Handle fetches the student's lessons and folds them into a percentage.
// A student with no lessons reports 0%; the student record itself is not
// consulted, so the id does not have to resolve.
func (h *StudentProgressHandler) Handle(ctx context.Context, q StudentProgressQuery) (*StudentProgressResult, error) {
	lessons, err := h.lessons.ListByStudent(ctx, q.StudentID)
	if err != nil {
		return nil, err
	}

	return &StudentProgressResult{
		StudentID:   q.StudentID,
		Percent:     lesson.Progress(lessons),
		LessonCount: len(lessons),
	}, nil
}
