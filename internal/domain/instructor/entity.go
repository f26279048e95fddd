// Package instructor contains the instructor aggregate of the driving school.
package instructor

import (
	"strings"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

// ID is a store-assigned, monotonically increasing instructor identifier.
type ID int64

// Type is the instructor's employment type.
type Type string

const (
	// TypeFullTime - employed full-time by the school.
	TypeFullTime Type = "Full-time"
	// TypePartTime - employed part-time by the school.
	TypePartTime Type = "Part-time"
)

// Recognized reports whether the type belongs to the closed label set.
func (t Type) Recognized() bool {
	return t == TypeFullTime || t == TypePartTime
}

// Instructor is a driving instructor employed by the school.
type Instructor struct {
	// ID is assigned by the store on registration.
	ID ID `json:"id"`

	// Name is the instructor's full name.
	Name string `json:"name"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// Email is the contact email address.
	Email string `json:"email"`

	// Type is the employment type label.
	Type Type `json:"instructor_type"`
}

// Ref is a structured (id, name) pair returned by searches.
type Ref struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Domain errors.
var (
	// ErrNotFound - the instructor does not exist.
	ErrNotFound = shared.NewDomainError("instructor", "Get", shared.ErrNotFound, "instructor not found")
)

// NewParams contains the fields required to register an instructor.
type NewParams struct {
	Name  string
	Phone string
	Email string
	Type  string
}

// New validates the registration fields and builds an Instructor without
// an ID. Every field is required.
func New(p NewParams) (*Instructor, error) {
	for _, f := range []struct{ name, value string }{
		{"name", p.Name},
		{"phone", p.Phone},
		{"email", p.Email},
		{"instructor_type", p.Type},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, shared.NewDomainError("instructor", "Create", shared.ErrEmptyField, f.name+" is required")
		}
	}

	return &Instructor{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
		Type:  Type(p.Type),
	}, nil
}
