package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
)

// RemoveInstructorCommand deletes an instructor by id. Lessons that
// reference the instructor keep their dangling instructor_id and the
// name snapshot taken at booking time.
type RemoveInstructorCommand struct {
	ID instructor.ID
}

// RemoveInstructorHandler handles the RemoveInstructorCommand.
type RemoveInstructorHandler struct {
	instructors instructor.Repository
}

// NewRemoveInstructorHandler creates a new RemoveInstructorHandler.
func NewRemoveInstructorHandler(instructors instructor.Repository) *RemoveInstructorHandler {
	return &RemoveInstructorHandler{instructors: instructors}
}

// Handle removes the instructor.
// Returns instructor.ErrNotFound if the id does not exist.
func (h *RemoveInstructorHandler) Handle(ctx context.Context, cmd RemoveInstructorCommand) error {
	return h.instructors.Delete(ctx, cmd.ID)
}
