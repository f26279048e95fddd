package instructor

import "context"

// Repository defines the storage contract for instructors.
type Repository interface {
	// Create inserts a new instructor and assigns i.ID from the store.
	Create(ctx context.Context, i *Instructor) error

	// GetByID returns the instructor with the given id.
	// Returns ErrNotFound if no such instructor exists.
	GetByID(ctx context.Context, id ID) (*Instructor, error)

	// Update overwrites the mutable fields of the stored instructor
	// identified by i.ID.
	// Returns ErrNotFound if no such instructor exists.
	Update(ctx context.Context, i *Instructor) error

	// Delete removes the instructor. Lessons that reference it keep their
	// dangling instructor_id; there is no cascade.
	// Returns ErrNotFound if no such instructor exists.
	Delete(ctx context.Context, id ID) error

	// Search returns (id, name) pairs for instructors whose name
	// contains the given substring. An empty substring returns everyone.
	Search(ctx context.Context, nameSubstring string) ([]Ref, error)

	// ListAll returns every instructor, in id order.
	ListAll(ctx context.Context) ([]*Instructor, error)

	// Count returns the total number of instructors.
	Count(ctx context.Context) (int, error)
}
