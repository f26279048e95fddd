package lesson

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// Repository defines the storage contract for lessons.
type Repository interface {
	// Create inserts a new lesson and assigns l.ID from the store.
	Create(ctx context.Context, l *Lesson) error

	// GetByID returns the lesson with the given id.
	// Returns ErrNotFound if no such lesson exists.
	GetByID(ctx context.Context, id ID) (*Lesson, error)

	// Update overwrites the mutable fields of the stored lesson: date
	// and status only. The parties, the type and the name snapshots are
	// immutable after booking and are never written back.
	// Returns ErrNotFound if no such lesson exists.
	Update(ctx context.Context, l *Lesson) error

	// Delete removes the lesson.
	// Returns ErrNotFound if no such lesson exists.
	Delete(ctx context.Context, id ID) error

	// SearchByStudentID returns lessons whose student id, in decimal
	// text form, contains the given substring. An empty substring
	// returns every lesson.
	SearchByStudentID(ctx context.Context, idSubstring string) ([]*Lesson, error)

	// ListByStudent returns the student's lessons in insertion order.
	// The order matters: the progress fold is last-write-wins.
	ListByStudent(ctx context.Context, studentID student.ID) ([]*Lesson, error)

	// ListAll returns every lesson, in id order.
	ListAll(ctx context.Context) ([]*Lesson, error)

	// CountByStatus returns the number of lessons carrying exactly the
	// given status label.
	CountByStatus(ctx context.Context, status Status) (int, error)
}
