package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
)

// SearchLessonsQuery finds lessons whose student id, written in decimal,
// contains the given substring. An empty substring returns every lesson.
type SearchLessonsQuery struct {
	StudentID string
}

// SearchLessonsHandler handles the SearchLessonsQuery.
type SearchLessonsHandler struct {
	lessons lesson.Repository
}

// NewSearchLessonsHandler creates a new SearchLessonsHandler.
func NewSearchLessonsHandler(lessons lesson.Repository) *SearchLessonsHandler {
	return &SearchLessonsHandler{lessons: lessons}
}

// Handle returns the matching lessons.
func (h *SearchLessonsHandler) Handle(ctx context.Context, q SearchLessonsQuery) ([]*lesson.Lesson, error) {
	return h.lessons.SearchByStudentID(ctx, q.StudentID)
}
