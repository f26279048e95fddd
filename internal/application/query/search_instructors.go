package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
)

// SearchInstructorsQuery finds instructors whose name contains the given
// substring. An empty substring returns the full list.
type SearchInstructorsQuery struct {
	Name string
}

// SearchInstructorsHandler handles the SearchInstructorsQuery.
type SearchInstructorsHandler struct {
	instructors instructor.Repository
}

// NewSearchInstructorsHandler creates a new SearchInstructorsHandler.
func NewSearchInstructorsHandler(instructors instructor.Repository) *SearchInstructorsHandler {
	return &SearchInstructorsHandler{instructors: instructors}
}

// Handle returns matching (id, name) pairs for the instructor picker.
func (h *SearchInstructorsHandler) Handle(ctx context.Context, q SearchInstructorsQuery) ([]instructor.Ref, error) {
	return h.instructors.Search(ctx, q.Name)
}
