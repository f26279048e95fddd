package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
)

// RegisterInstructorCommand contains the form fields for adding an
// instructor. All fields are required.
type RegisterInstructorCommand struct {
	Name  string
	Phone string
	Email string
	Type  string
}

// RegisterInstructorResult contains the outcome of the registration.
type RegisterInstructorResult struct {
	// InstructorID is the store-assigned id of the new instructor.
	InstructorID instructor.ID
}

// RegisterInstructorHandler handles the RegisterInstructorCommand.
type RegisterInstructorHandler struct {
	instructors instructor.Repository
}

// NewRegisterInstructorHandler creates a new RegisterInstructorHandler.
func NewRegisterInstructorHandler(instructors instructor.Repository) *RegisterInstructorHandler {
	return &RegisterInstructorHandler{instructors: instructors}
}

// Handle validates the fields, inserts the instructor and returns its id.
func (h *RegisterInstructorHandler) Handle(ctx context.Context, cmd RegisterInstructorCommand) (*RegisterInstructorResult, error) {
	i, err := instructor.New(instructor.NewParams{
		Name:  cmd.Name,
		Phone: cmd.Phone,
		Email: cmd.Email,
		Type:  cmd.Type,
	})
	if err != nil {
		return nil, err
	}

	if err := h.instructors.Create(ctx, i); err != nil {
		return nil, err
	}

	return &RegisterInstructorResult{InstructorID: i.ID}, nil
}
