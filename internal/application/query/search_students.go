package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// SearchStudentsQuery finds students whose name contains the given
// substring. An empty substring returns the full list.
type SearchStudentsQuery struct {
	Name string
}

// SearchStudentsHandler handles the SearchStudentsQuery.
type SearchStudentsHandler struct {
	students student.Repository
}

// NewSearchStudentsHandler creates a new SearchStudentsHandler.
func NewSearchStudentsHandler(students student.Repository) *SearchStudentsHandler {
	return &SearchStudentsHandler{students: students}
}

// Handle returns matching (id, name) pairs for the student picker.
func (h *SearchStudentsHandler) Handle(ctx context.Context, q SearchStudentsQuery) ([]student.Ref, error) {
	return h.students.Search(ctx, q.Name)
}
