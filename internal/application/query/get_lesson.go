package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
)

// GetLessonQuery is a point lookup by id.
type GetLessonQuery struct {
	ID lesson.ID
}

// GetLessonHandler handles the GetLessonQuery.
type GetLessonHandler struct {
	lessons lesson.Repository
}

// NewGetLessonHandler creates a new GetLessonHandler.
func NewGetLessonHandler(lessons lesson.Repository) *GetLessonHandler {
	return &GetLessonHandler{lessons: lessons}
}

// Handle returns the lesson, or lesson.ErrNotFound.
func (h *GetLessonHandler) Handle(ctx context.Context, q GetLessonQuery) (*lesson.Lesson, error) {
	return h.lessons.GetByID(ctx, q.ID)
}
