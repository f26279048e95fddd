// Package payment contains the payment record aggregate.
package payment

import (
	"strings"

	"github.com/passit-driving/school-hub/internal/domain/shared"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// ID is a store-assigned, monotonically increasing payment identifier.
type ID int64

// Payment records an amount received from a student. The student
// reference is soft: deleting the student leaves the payment in place
// with a dangling id.
type Payment struct {
	// ID is assigned by the store.
	ID ID `json:"id"`

	// StudentID is a soft reference to the paying student.
	StudentID student.ID `json:"student_id"`

	// Amount is the payment amount in whole currency units. It is
	// usually derived from the lesson type's price.
	Amount int `json:"amount"`

	// Date is the payment date in text form.
	Date string `json:"payment_date"`
}

// Domain errors.
var (
	// ErrNotFound - the payment does not exist.
	ErrNotFound = shared.NewDomainError("payment", "Get", shared.ErrNotFound, "payment not found")
)

// NewParams contains the fields required to record a payment.
type NewParams struct {
	StudentID student.ID
	Amount    int
	Date      string
}

// New validates the fields and builds a Payment without an ID.
func New(p NewParams) (*Payment, error) {
	if p.StudentID <= 0 {
		return nil, shared.NewDomainError("payment", "Record", shared.ErrEmptyField, "student_id is required")
	}
	if p.Amount <= 0 {
		return nil, shared.NewDomainError("payment", "Record", shared.ErrValidation, "amount must be positive")
	}
	if strings.TrimSpace(p.Date) == "" {
		return nil, shared.NewDomainError("payment", "Record", shared.ErrEmptyField, "payment_date is required")
	}

	return &Payment{
		StudentID: p.StudentID,
		Amount:    p.Amount,
		Date:      p.Date,
	}, nil
}
