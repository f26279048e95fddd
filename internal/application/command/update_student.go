package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// UpdateStudentCommand updates a student keyed by id. Nil fields are left
// unchanged; supplied fields overwrite the stored values. The id itself
// is immutable.
type UpdateStudentCommand struct {
	ID            student.ID
	Name          *string
	Address       *string
	Phone         *string
	Progress      *string
	PaymentStatus *string
}

// UpdateStudentHandler handles the UpdateStudentCommand.
type UpdateStudentHandler struct {
	students student.Repository
}

// NewUpdateStudentHandler creates a new UpdateStudentHandler.
func NewUpdateStudentHandler(students student.Repository) *UpdateStudentHandler {
	return &UpdateStudentHandler{students: students}
}

// Handle applies the supplied fields to the stored student.
// Returns student.ErrNotFound if the id does not exist; nothing is
// written in that case.
func (h *UpdateStudentHandler) Handle(ctx context.Context, cmd UpdateStudentCommand) (*student.Student, error) {
	s, err := h.students.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		s.Name = *cmd.Name
	}
	if cmd.Address != nil {
		s.Address = *cmd.Address
	}
	if cmd.Phone != nil {
		s.Phone = *cmd.Phone
	}
	if cmd.Progress != nil {
		s.Progress = *cmd.Progress
	}
	if cmd.PaymentStatus != nil {
		s.PaymentStatus = student.PaymentStatus(*cmd.PaymentStatus)
	}

	if err := h.students.Update(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}
