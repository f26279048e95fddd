package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
)

// CancelLessonCommand deletes a lesson by id.
type CancelLessonCommand struct {
	ID lesson.ID
}

// CancelLessonHandler handles the CancelLessonCommand.
type CancelLessonHandler struct {
	lessons lesson.Repository
}

// NewCancelLessonHandler creates a new CancelLessonHandler.
func NewCancelLessonHandler(lessons lesson.Repository) *CancelLessonHandler {
	return &CancelLessonHandler{lessons: lessons}
}

// Handle removes the lesson.
// Returns lesson.ErrNotFound if the id does not exist.
func (h *CancelLessonHandler) Handle(ctx context.Context, cmd CancelLessonCommand) error {
	return h.lessons.Delete(ctx, cmd.ID)
}
