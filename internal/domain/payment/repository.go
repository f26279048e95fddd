package payment

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// Repository defines the storage contract for payments.
type Repository interface {
	// Create inserts a new payment and assigns p.ID from the store.
	Create(ctx context.Context, p *Payment) error

	// GetByID returns the payment with the given id.
	// Returns ErrNotFound if no such payment exists.
	GetByID(ctx context.Context, id ID) (*Payment, error)

	// ListByStudent returns the student's payments in insertion order.
	ListByStudent(ctx context.Context, studentID student.ID) ([]*Payment, error)

	// Delete removes the payment.
	// Returns ErrNotFound if no such payment exists.
	Delete(ctx context.Context, id ID) error
}
