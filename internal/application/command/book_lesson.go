package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// BookLessonCommand books a lesson for a student with an instructor.
//
// Booking resolves both parties by id and captures their names as
// denormalized snapshots on the lesson row; later renames never touch the
// snapshots. A Pass Plus booking additionally requires the caller to set
// PassPlusAcknowledged after confirming with the user that the
// Introductory and Standard lessons were already completed - a manual
// gate, never checked against the lesson history.
type BookLessonCommand struct {
	StudentID    student.ID
	InstructorID instructor.ID
	Type         string
	Date         string
	Status       string

	// PassPlusAcknowledged carries the user's yes/no confirmation for
	// Pass Plus bookings. Declining aborts the booking with no row
	// written. Ignored for every other lesson type.
	PassPlusAcknowledged bool
}

// BookLessonResult contains the outcome of the booking.
type BookLessonResult struct {
	// LessonID is the store-assigned id of the new lesson.
	LessonID lesson.ID

	// Price is the derived lesson price for display on the
	// confirmation; unrecognized types price at 0.
	Price int
}

// BookLessonHandler handles the BookLessonCommand.
type BookLessonHandler struct {
	students    student.Repository
	instructors instructor.Repository
	lessons     lesson.Repository
}

// NewBookLessonHandler creates a new BookLessonHandler.
func NewBookLessonHandler(
	students student.Repository,
	instructors instructor.Repository,
	lessons lesson.Repository,
) *BookLessonHandler {
	return &BookLessonHandler{
		students:    students,
		instructors: instructors,
		lessons:     lessons,
	}
}

// Handle books the lesson and returns its id and derived price.
func (h *BookLessonHandler) Handle(ctx context.Context, cmd BookLessonCommand) (*BookLessonResult, error) {
	if lesson.Type(cmd.Type) == lesson.TypePassPlus && !cmd.PassPlusAcknowledged {
		return nil, lesson.ErrAcknowledgementRequired
	}

	s, err := h.students.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	i, err := h.instructors.GetByID(ctx, cmd.InstructorID)
	if err != nil {
		return nil, err
	}

	l, err := lesson.New(lesson.NewParams{
		StudentID:      s.ID,
		StudentName:    s.Name,
		InstructorID:   i.ID,
		InstructorName: i.Name,
		Type:           cmd.Type,
		Date:           cmd.Date,
		Status:         cmd.Status,
	})
	if err != nil {
		return nil, err
	}

	if err := h.lessons.Create(ctx, l); err != nil {
		return nil, err
	}

	return &BookLessonResult{
		LessonID: l.ID,
		Price:    l.Type.Price(),
	}, nil
}
