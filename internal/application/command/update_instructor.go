package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
)

// UpdateInstructorCommand updates an instructor keyed by id. Nil fields
// are left unchanged.
type UpdateInstructorCommand struct {
	ID    instructor.ID
	Name  *string
	Phone *string
	Email *string
	Type  *string
}

// UpdateInstructorHandler handles the UpdateInstructorCommand.
type UpdateInstructorHandler struct {
	instructors instructor.Repository
}

// NewUpdateInstructorHandler creates a new UpdateInstructorHandler.
func NewUpdateInstructorHandler(instructors instructor.Repository) *UpdateInstructorHandler {
	return &UpdateInstructorHandler{instructors: instructors}
}

// Handle applies the supplied fields to the stored instructor.
// Returns instructor.ErrNotFound if the id does not exist.
func (h *UpdateInstructorHandler) Handle(ctx context.Context, cmd UpdateInstructorCommand) (*instructor.Instructor, error) {
	i, err := h.instructors.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		i.Name = *cmd.Name
	}
	if cmd.Phone != nil {
		i.Phone = *cmd.Phone
	}
	if cmd.Email != nil {
		i.Email = *cmd.Email
	}
	if cmd.Type != nil {
		i.Type = instructor.Type(*cmd.Type)
	}

	if err := h.instructors.Update(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}
