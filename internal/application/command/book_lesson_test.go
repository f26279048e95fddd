package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/shared"
	"github.com/passit-driving/school-hub/internal/domain/student"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/sqlite"
)

type bookingFixture struct {
	students    student.Repository
	instructors instructor.Repository
	lessons     lesson.Repository
	handler     *BookLessonHandler

	studentID    student.ID
	instructorID instructor.ID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &bookingFixture{
		students:    sqlite.NewStudentRepository(store),
		instructors: sqlite.NewInstructorRepository(store),
		lessons:     sqlite.NewLessonRepository(store),
	}
	f.handler = NewBookLessonHandler(f.students, f.instructors, f.lessons)

	ctx := context.Background()
	s := &student.Student{
		Name: "Amelia Clarke", Address: "12 Mill Lane", Phone: "07700 900123",
		Progress: "Level 1", PaymentStatus: student.PaymentStatusUnpaid,
	}
	require.NoError(t, f.students.Create(ctx, s))
	f.studentID = s.ID

	i := &instructor.Instructor{
		Name: "Ray Donovan", Phone: "07700 900456",
		Email: "ray@passit.example", Type: instructor.TypeFullTime,
	}
	require.NoError(t, f.instructors.Create(ctx, i))
	f.instructorID = i.ID

	return f
}

func TestBookLesson_CapturesNameSnapshotsAndPrice(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	res, err := f.handler.Handle(ctx, BookLessonCommand{
		StudentID:    f.studentID,
		InstructorID: f.instructorID,
		Type:         "Standard",
		Date:         "2026-03-14",
		Status:       "Unpaid",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, res.Price)

	l, err := f.lessons.GetByID(ctx, res.LessonID)
	require.NoError(t, err)
	assert.Equal(t, "Amelia Clarke", l.StudentName)
	assert.Equal(t, "Ray Donovan", l.InstructorName)
}

func TestBookLesson_PassPlusRequiresAcknowledgement(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.handler.Handle(ctx, BookLessonCommand{
		StudentID:    f.studentID,
		InstructorID: f.instructorID,
		Type:         "Pass Plus",
		Date:         "2026-03-14",
		Status:       "Unpaid",
	})
	assert.True(t, errors.Is(err, lesson.ErrAcknowledgementRequired))

	// Declining aborts before anything reaches the store.
	all, err := f.lessons.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookLesson_PassPlusAcknowledgedProceeds(t *testing.T) {
	f := newBookingFixture(t)

	res, err := f.handler.Handle(context.Background(), BookLessonCommand{
		StudentID:            f.studentID,
		InstructorID:         f.instructorID,
		Type:                 "Pass Plus",
		Date:                 "2026-03-14",
		Status:               "Unpaid",
		PassPlusAcknowledged: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 300, res.Price)
}

func TestBookLesson_UnknownStudentFails(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.handler.Handle(context.Background(), BookLessonCommand{
		StudentID:    99,
		InstructorID: f.instructorID,
		Type:         "Standard",
		Date:         "2026-03-14",
		Status:       "Unpaid",
	})
	assert.True(t, shared.IsNotFound(err))
}

func TestBookLesson_UnrecognizedTypePricesAtZero(t *testing.T) {
	f := newBookingFixture(t)

	res, err := f.handler.Handle(context.Background(), BookLessonCommand{
		StudentID:    f.studentID,
		InstructorID: f.instructorID,
		Type:         "Motorway",
		Date:         "2026-03-14",
		Status:       "Unpaid",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Price)
}
