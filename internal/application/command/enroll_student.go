// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// EnrollStudentCommand contains the form fields for adding a student.
// All fields are required; validation happens before any store access.
type EnrollStudentCommand struct {
	Name          string
	Address       string
	Phone         string
	Progress      string
	PaymentStatus string
}

// EnrollStudentResult contains the outcome of the enrollment.
type EnrollStudentResult struct {
	// StudentID is the store-assigned id of the new student.
	StudentID student.ID
}

// EnrollStudentHandler handles the EnrollStudentCommand.
type EnrollStudentHandler struct {
	students student.Repository
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
func NewEnrollStudentHandler(students student.Repository) *EnrollStudentHandler {
	return &EnrollStudentHandler{students: students}
}

// Handle validates the fields, inserts the student and returns its id.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollStudentResult, error) {
	s, err := student.New(student.NewParams{
		Name:          cmd.Name,
		Address:       cmd.Address,
		Phone:         cmd.Phone,
		Progress:      cmd.Progress,
		PaymentStatus: cmd.PaymentStatus,
	})
	if err != nil {
		return nil, err
	}

	if err := h.students.Create(ctx, s); err != nil {
		return nil, err
	}

	return &EnrollStudentResult{StudentID: s.ID}, nil
}
