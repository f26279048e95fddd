package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
)

// GetInstructorQuery is a point lookup by id.
type GetInstructorQuery struct {
	ID instructor.ID
}

// GetInstructorHandler handles the GetInstructorQuery.
type GetInstructorHandler struct {
	instructors instructor.Repository
}

// NewGetInstructorHandler creates a new GetInstructorHandler.
func NewGetInstructorHandler(instructors instructor.Repository) *GetInstructorHandler {
	return &GetInstructorHandler{instructors: instructors}
}

// Handle returns the instructor, or instructor.ErrNotFound.
func (h *GetInstructorHandler) Handle(ctx context.Context, q GetInstructorQuery) (*instructor.Instructor, error) {
	return h.instructors.GetByID(ctx, q.ID)
}
