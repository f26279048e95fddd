// Package student contains the student aggregate of the driving school.
// This is core business logic - there are no external dependencies here.
package student

import (
	"strings"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

// ID is a store-assigned, monotonically increasing student identifier.
// It is unique and immutable once assigned.
type ID int64

// PaymentStatus is the student's account standing.
type PaymentStatus string

const (
	// PaymentStatusPaid - the student's account is settled.
	PaymentStatusPaid PaymentStatus = "Paid"
	// PaymentStatusUnpaid - the student owes payment.
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// Recognized reports whether the status belongs to the closed label set.
// The store accepts any text; unrecognized labels derive as unknown
// downstream instead of being rejected.
func (p PaymentStatus) Recognized() bool {
	return p == PaymentStatusPaid || p == PaymentStatusUnpaid
}

// Student is a learner enrolled with the driving school.
type Student struct {
	// ID is assigned by the store on enrollment.
	ID ID `json:"id"`

	// Name is the student's full name.
	Name string `json:"name"`

	// Address is the postal address.
	Address string `json:"address"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// Progress is the self-reported level label, "Level 1" .. "Level 10".
	// Free text in practice; parsing happens only when a level-based
	// progress figure is requested.
	Progress string `json:"progress"`

	// PaymentStatus is the account standing label.
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// Ref is a structured (id, name) pair returned by searches so callers
// never have to parse display strings to recover an identifier.
type Ref struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Domain errors.
var (
	// ErrNotFound - the student does not exist.
	ErrNotFound = shared.NewDomainError("student", "Get", shared.ErrNotFound, "student not found")
)

// NewParams contains the fields required to enroll a student.
type NewParams struct {
	Name          string
	Address       string
	Phone         string
	Progress      string
	PaymentStatus string
}

// New validates the enrollment fields and builds a Student without an ID.
// Every field is required; a missing or empty field rejects the whole
// enrollment before any store access.
func New(p NewParams) (*Student, error) {
	for _, f := range []struct{ name, value string }{
		{"name", p.Name},
		{"address", p.Address},
		{"phone", p.Phone},
		{"progress", p.Progress},
		{"payment_status", p.PaymentStatus},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, shared.NewDomainError("student", "Create", shared.ErrEmptyField, f.name+" is required")
		}
	}

	return &Student{
		Name:          p.Name,
		Address:       p.Address,
		Phone:         p.Phone,
		Progress:      p.Progress,
		PaymentStatus: PaymentStatus(p.PaymentStatus),
	}, nil
}
