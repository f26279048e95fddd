// Package lesson contains the lesson aggregate: bookings, the price table
// and the milestone-based progress derivation.
package lesson

import (
	"strings"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/shared"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// ID is a store-assigned, monotonically increasing lesson identifier.
type ID int64

// Type is the kind of lesson booked.
type Type string

const (
	// TypeIntroductory - first lesson for a new learner.
	TypeIntroductory Type = "Introductory"
	// TypeStandard - regular tuition lesson.
	TypeStandard Type = "Standard"
	// TypePassPlus - advanced course taken after the standard lessons.
	TypePassPlus Type = "Pass Plus"
	// TypeDrivingTest - the practical driving test itself.
	TypeDrivingTest Type = "Driving Test"
)

// Recognized reports whether the type belongs to the closed label set.
// The store accepts any text; an unrecognized type prices at zero and
// contributes nothing to progress.
func (t Type) Recognized() bool {
	switch t {
	case TypeIntroductory, TypeStandard, TypePassPlus, TypeDrivingTest:
		return true
	default:
		return false
	}
}

// Price returns the lesson price in whole currency units.
// Unrecognized types price at 0.
func (t Type) Price() int {
	switch t {
	case TypeIntroductory:
		return 100
	case TypeStandard:
		return 200
	case TypePassPlus:
		return 300
	case TypeDrivingTest:
		return 350
	default:
		return 0
	}
}

// Milestone returns the fixed completion percentage a lesson type stands
// for in the progress model. ok is false for unrecognized types, which
// leave the running progress value unchanged.
func (t Type) Milestone() (percent int, ok bool) {
	switch t {
	case TypeIntroductory:
		return 20, true
	case TypeStandard:
		return 60, true
	case TypePassPlus:
		return 95, true
	case TypeDrivingTest:
		return 100, true
	default:
		return 0, false
	}
}

// Status is the lesson's payment status label.
type Status string

const (
	// StatusPaid - the lesson has been paid for.
	StatusPaid Status = "Paid"
	// StatusUnpaid - the lesson has not been paid for.
	StatusUnpaid Status = "Unpaid"

	// StatusBooked is a legacy label written by an earlier revision of
	// the booking flow. The summary report still counts lessons carrying
	// it, so the constant stays defined alongside Paid/Unpaid.
	StatusBooked Status = "Booked"
)

// Lesson is a booked lesson linking one student and one instructor.
//
// StudentName and InstructorName are denormalized snapshots captured at
// booking time. They are never re-synchronized when the referenced record
// is renamed, and the id references themselves are soft: deleting the
// student or instructor leaves them dangling.
type Lesson struct {
	// ID is assigned by the store on booking.
	ID ID `json:"id"`

	// StudentID is a soft reference to the booked student.
	StudentID student.ID `json:"student_id"`

	// StudentName is the student's name as of booking time.
	StudentName string `json:"student_name"`

	// InstructorID is a soft reference to the assigned instructor.
	InstructorID instructor.ID `json:"instructor_id"`

	// InstructorName is the instructor's name as of booking time.
	InstructorName string `json:"instructor_name"`

	// Type is the lesson type. Immutable after booking.
	Type Type `json:"lesson_type"`

	// Date is the lesson date in ISO YYYY-MM-DD text form, unvalidated.
	Date string `json:"date"`

	// Status is the payment status label.
	Status Status `json:"status"`
}

// Domain errors.
var (
	// ErrNotFound - the lesson does not exist.
	ErrNotFound = shared.NewDomainError("lesson", "Get", shared.ErrNotFound, "lesson not found")

	// ErrAcknowledgementRequired - a Pass Plus booking was submitted
	// without the caller confirming that the Introductory and Standard
	// lessons were already completed. The booking is aborted; nothing is
	// checked against the lesson history automatically.
	ErrAcknowledgementRequired = shared.NewDomainError("lesson", "Book", shared.ErrValidation,
		"Pass Plus booking requires acknowledgement that Introductory and Standard lessons are complete")
)

// NewParams contains the fields required to book a lesson. The name
// snapshots are supplied by the booking flow after it resolves the live
// student and instructor records.
type NewParams struct {
	StudentID      student.ID
	StudentName    string
	InstructorID   instructor.ID
	InstructorName string
	Type           string
	Date           string
	Status         string
}

// New validates the booking fields and builds a Lesson without an ID.
func New(p NewParams) (*Lesson, error) {
	if p.StudentID <= 0 {
		return nil, shared.NewDomainError("lesson", "Book", shared.ErrEmptyField, "student_id is required")
	}
	if p.InstructorID <= 0 {
		return nil, shared.NewDomainError("lesson", "Book", shared.ErrEmptyField, "instructor_id is required")
	}
	for _, f := range []struct{ name, value string }{
		{"student_name", p.StudentName},
		{"instructor_name", p.InstructorName},
		{"lesson_type", p.Type},
		{"date", p.Date},
		{"status", p.Status},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, shared.NewDomainError("lesson", "Book", shared.ErrEmptyField, f.name+" is required")
		}
	}

	return &Lesson{
		StudentID:      p.StudentID,
		StudentName:    p.StudentName,
		InstructorID:   p.InstructorID,
		InstructorName: p.InstructorName,
		Type:           Type(p.Type),
		Date:           p.Date,
		Status:         Status(p.Status),
	}, nil
}
