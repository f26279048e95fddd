// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// GetStudentQuery is a point lookup by id.
type GetStudentQuery struct {
	ID student.ID
}

// GetStudentHandler handles the GetStudentQuery.
type GetStudentHandler struct {
	students student.Repository
}

// NewGetStudentHandler creates a new GetStudentHandler.
func NewGetStudentHandler(students student.Repository) *GetStudentHandler {
	return &GetStudentHandler{students: students}
}

// Handle returns the student, or student.ErrNotFound.
func (h *GetStudentHandler) Handle(ctx context.Context, q GetStudentQuery) (*student.Student, error) {
	return h.students.GetByID(ctx, q.ID)
}
