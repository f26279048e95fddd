package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// RemoveStudentCommand deletes a student by id. Lessons and payments
// referencing the student are left in place with dangling references;
// there is no cascade and no block.
type RemoveStudentCommand struct {
	ID student.ID
}

// RemoveStudentHandler handles the RemoveStudentCommand.
type RemoveStudentHandler struct {
	students student.Repository
}

// NewRemoveStudentHandler creates a new RemoveStudentHandler.
func NewRemoveStudentHandler(students student.Repository) *RemoveStudentHandler {
	return &RemoveStudentHandler{students: students}
}

// Handle removes the student.
// Returns student.ErrNotFound if the id does not exist.
func (h *RemoveStudentHandler) Handle(ctx context.Context, cmd RemoveStudentCommand) error {
	return h.students.Delete(ctx, cmd.ID)
}
