package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
)

// UpdateLessonCommand updates a booked lesson keyed by id. Only the date
// and the status are mutable after booking; the parties, the lesson type
// and the name snapshots are fixed. Nil fields are left unchanged.
type UpdateLessonCommand struct {
	ID     lesson.ID
	Date   *string
	Status *string
}

// UpdateLessonHandler handles the UpdateLessonCommand.
type UpdateLessonHandler struct {
	lessons lesson.Repository
}

// NewUpdateLessonHandler creates a new UpdateLessonHandler.
func NewUpdateLessonHandler(lessons lesson.Repository) *UpdateLessonHandler {
	return &UpdateLessonHandler{lessons: lessons}
}

// Handle applies the supplied fields to the stored lesson.
// Returns lesson.ErrNotFound if the id does not exist.
func (h *UpdateLessonHandler) Handle(ctx context.Context, cmd UpdateLessonCommand) (*lesson.Lesson, error) {
	l, err := h.lessons.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Date != nil {
		l.Date = *cmd.Date
	}
	if cmd.Status != nil {
		l.Status = lesson.Status(*cmd.Status)
	}

	if err := h.lessons.Update(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}
