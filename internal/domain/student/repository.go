package student

import "context"

// Repository defines the storage contract for students.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// Create inserts a new student and assigns s.ID from the store.
	Create(ctx context.Context, s *Student) error

	// GetByID returns the student with the given id.
	// Returns ErrNotFound if no such student exists.
	GetByID(ctx context.Context, id ID) (*Student, error)

	// Update overwrites the mutable fields of the stored student
	// identified by s.ID. The id itself never changes.
	// Returns ErrNotFound if no such student exists.
	Update(ctx context.Context, s *Student) error

	// Delete removes the student. Dependent lesson and payment rows are
	// left untouched; their references dangle by design.
	// Returns ErrNotFound if no such student exists.
	Delete(ctx context.Context, id ID) error

	// Search returns (id, name) pairs for students whose name contains
	// the given substring. An empty substring returns the full set.
	Search(ctx context.Context, nameSubstring string) ([]Ref, error)

	// ListAll returns every student, in id order.
	ListAll(ctx context.Context) ([]*Student, error)

	// Count returns the total number of students.
	Count(ctx context.Context) (int, error)
}
