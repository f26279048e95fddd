package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/shared"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newStudent(name string) *student.Student {
	return &student.Student{
		Name:          name,
		Address:       "12 Mill Lane",
		Phone:         "07700 900123",
		Progress:      "Level 1",
		PaymentStatus: student.PaymentStatusUnpaid,
	}
}

func newInstructor(name string) *instructor.Instructor {
	return &instructor.Instructor{
		Name:  name,
		Phone: "07700 900456",
		Email: "ray@passit.example",
		Type:  instructor.TypeFullTime,
	}
}

func TestStudentRepository_CreateAndGet(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)
	ctx := context.Background()

	s := newStudent("Amelia Clarke")
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, student.ID(1), s.ID, "first insert gets id 1")

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)
	assert.Equal(t, s.Address, got.Address)
	assert.Equal(t, s.Progress, got.Progress)
	assert.Equal(t, s.PaymentStatus, got.PaymentStatus)
}

func TestStudentRepository_IDsAreMonotonic(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)
	ctx := context.Background()

	a := newStudent("Amelia Clarke")
	b := newStudent("Ben Porter")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	assert.Greater(t, b.ID, a.ID)

	// Deleting the latest record must not release its id for reuse.
	require.NoError(t, repo.Delete(ctx, b.ID))
	c := newStudent("Cara Singh")
	require.NoError(t, repo.Create(ctx, c))
	assert.Greater(t, c.ID, b.ID)
}

func TestStudentRepository_GetMissing(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, shared.IsNotFound(err))
}

func TestStudentRepository_Update(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)
	ctx := context.Background()

	s := newStudent("Amelia Clarke")
	require.NoError(t, repo.Create(ctx, s))

	s.Address = "99 New Road"
	s.PaymentStatus = student.PaymentStatusPaid
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "99 New Road", got.Address)
	assert.Equal(t, student.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, "Amelia Clarke", got.Name, "untouched fields keep their values")
}

func TestStudentRepository_UpdateMissing(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)

	s := newStudent("Ghost")
	s.ID = 42
	err := repo.Update(context.Background(), s)
	assert.True(t, shared.IsNotFound(err))
}

func TestStudentRepository_Delete(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)
	ctx := context.Background()

	s := newStudent("Amelia Clarke")
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.GetByID(ctx, s.ID)
	assert.True(t, shared.IsNotFound(err))

	// Deleting twice reports not found, not success.
	assert.True(t, shared.IsNotFound(repo.Delete(ctx, s.ID)))
}

func TestStudentRepository_Search(t *testing.T) {
	store := openTestStore(t)
	repo := NewStudentRepository(store)
	ctx := context.Background()

	for _, name := range []string{"Amelia Clarke", "Ben Porter", "Cara Clarkson"} {
		require.NoError(t, repo.Create(ctx, newStudent(name)))
	}

	refs, err := repo.Search(ctx, "Clark")
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Amelia Clarke", refs[0].Name)
	assert.Equal(t, "Cara Clarkson", refs[1].Name)
	assert.NotZero(t, refs[0].ID, "refs carry real ids, not formatted text")

	// An empty substring matches everything.
	refs, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, refs, 3)

	refs, err = repo.Search(ctx, "Zzz")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestInstructorRepository_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	repo := NewInstructorRepository(store)
	ctx := context.Background()

	i := newInstructor("Ray Donovan")
	require.NoError(t, repo.Create(ctx, i))
	assert.Equal(t, instructor.ID(1), i.ID)

	got, err := repo.GetByID(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ray Donovan", got.Name)
	assert.Equal(t, instructor.TypeFullTime, got.Type)

	got.Type = instructor.TypePartTime
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, i.ID)
	require.NoError(t, err)
	assert.Equal(t, instructor.TypePartTime, got.Type)

	require.NoError(t, repo.Delete(ctx, i.ID))
	_, err = repo.GetByID(ctx, i.ID)
	assert.True(t, shared.IsNotFound(err))
}

func TestLessonRepository_SnapshotsSurviveRename(t *testing.T) {
	store := openTestStore(t)
	students := NewStudentRepository(store)
	lessons := NewLessonRepository(store)
	ctx := context.Background()

	s := newStudent("Amelia Clarke")
	require.NoError(t, students.Create(ctx, s))

	l := &lesson.Lesson{
		StudentID:      s.ID,
		StudentName:    s.Name,
		InstructorID:   1,
		InstructorName: "Ray Donovan",
		Type:           lesson.TypeIntroductory,
		Date:           "2026-03-14",
		Status:         lesson.StatusUnpaid,
	}
	require.NoError(t, lessons.Create(ctx, l))

	s.Name = "Amelia Brown"
	require.NoError(t, students.Update(ctx, s))

	got, err := lessons.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amelia Clarke", got.StudentName, "booking-time snapshot is never re-synchronized")
}

func TestLessonRepository_UpdateWritesDateAndStatusOnly(t *testing.T) {
	store := openTestStore(t)
	lessons := NewLessonRepository(store)
	ctx := context.Background()

	l := &lesson.Lesson{
		StudentID:      1,
		StudentName:    "Amelia Clarke",
		InstructorID:   1,
		InstructorName: "Ray Donovan",
		Type:           lesson.TypeStandard,
		Date:           "2026-03-14",
		Status:         lesson.StatusUnpaid,
	}
	require.NoError(t, lessons.Create(ctx, l))

	// An attempt to rewrite the immutable fields goes nowhere; only date
	// and status reach the row.
	l.Type = lesson.TypePassPlus
	l.StudentName = "Someone Else"
	l.Date = "2026-03-21"
	l.Status = lesson.StatusPaid
	require.NoError(t, lessons.Update(ctx, l))

	got, err := lessons.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-21", got.Date)
	assert.Equal(t, lesson.StatusPaid, got.Status)
	assert.Equal(t, lesson.TypeStandard, got.Type)
	assert.Equal(t, "Amelia Clarke", got.StudentName)
}

func TestLessonRepository_SearchByStudentID(t *testing.T) {
	store := openTestStore(t)
	lessons := NewLessonRepository(store)
	ctx := context.Background()

	for _, sid := range []student.ID{1, 12, 21} {
		require.NoError(t, lessons.Create(ctx, &lesson.Lesson{
			StudentID:      sid,
			StudentName:    "S",
			InstructorID:   1,
			InstructorName: "I",
			Type:           lesson.TypeStandard,
			Date:           "2026-03-14",
			Status:         lesson.StatusUnpaid,
		}))
	}

	// The match is substring-over-decimal-text: "1" hits 1, 12 and 21.
	got, err := lessons.SearchByStudentID(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = lessons.SearchByStudentID(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = lessons.SearchByStudentID(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3, "empty substring returns every lesson")
}

func TestLessonRepository_OrphanedReferencesSurvive(t *testing.T) {
	store := openTestStore(t)
	students := NewStudentRepository(store)
	lessons := NewLessonRepository(store)
	ctx := context.Background()

	s := newStudent("Amelia Clarke")
	require.NoError(t, students.Create(ctx, s))
	l := &lesson.Lesson{
		StudentID:      s.ID,
		StudentName:    s.Name,
		InstructorID:   7,
		InstructorName: "Ray Donovan",
		Type:           lesson.TypeIntroductory,
		Date:           "2026-03-14",
		Status:         lesson.StatusUnpaid,
	}
	require.NoError(t, lessons.Create(ctx, l))

	// Deleting the student neither cascades nor is blocked; the lesson
	// keeps its dangling reference.
	require.NoError(t, students.Delete(ctx, s.ID))

	got, err := lessons.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.StudentID)
	assert.Equal(t, "Amelia Clarke", got.StudentName)
}

func TestLessonRepository_CountByStatus(t *testing.T) {
	store := openTestStore(t)
	lessons := NewLessonRepository(store)
	ctx := context.Background()

	for _, status := range []lesson.Status{
		lesson.StatusBooked, lesson.StatusBooked, lesson.StatusPaid, lesson.StatusUnpaid,
	} {
		require.NoError(t, lessons.Create(ctx, &lesson.Lesson{
			StudentID:      1,
			StudentName:    "S",
			InstructorID:   1,
			InstructorName: "I",
			Type:           lesson.TypeStandard,
			Date:           "2026-03-14",
			Status:         status,
		}))
	}

	n, err := lessons.CountByStatus(ctx, lesson.StatusBooked)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "only the exact label counts")
}

func TestPaymentRepository_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	payments := NewPaymentRepository(store)
	ctx := context.Background()

	p := &payment.Payment{StudentID: 3, Amount: 200, Date: "2026-03-14"}
	require.NoError(t, payments.Create(ctx, p))
	assert.Equal(t, payment.ID(1), p.ID)

	got, err := payments.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, got.Amount)

	list, err := payments.ListByStudent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = payments.ListByStudent(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, payments.Delete(ctx, p.ID))
	_, err = payments.GetByID(ctx, p.ID)
	assert.True(t, shared.IsNotFound(err))
}

func TestFirstBookingScenario(t *testing.T) {
	store := openTestStore(t)
	students := NewStudentRepository(store)
	instructors := NewInstructorRepository(store)
	lessons := NewLessonRepository(store)
	ctx := context.Background()

	s := &student.Student{
		Name: "Jane Doe", Address: "1 Side St", Phone: "07700 900001",
		Progress: "Level 3", PaymentStatus: student.PaymentStatusUnpaid,
	}
	require.NoError(t, students.Create(ctx, s))
	assert.Equal(t, student.ID(1), s.ID)

	i := &instructor.Instructor{
		Name: "Bob", Phone: "07700 900002",
		Email: "bob@passit.example", Type: instructor.TypeFullTime,
	}
	require.NoError(t, instructors.Create(ctx, i))
	assert.Equal(t, instructor.ID(1), i.ID)

	l := &lesson.Lesson{
		StudentID: s.ID, StudentName: s.Name,
		InstructorID: i.ID, InstructorName: i.Name,
		Type: lesson.TypeStandard, Date: "2024-05-01", Status: lesson.StatusUnpaid,
	}
	require.NoError(t, lessons.Create(ctx, l))
	assert.Equal(t, lesson.ID(1), l.ID)
	assert.Equal(t, 200, l.Type.Price())

	booked, err := lessons.ListByStudent(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, lesson.Progress(booked))

	// Removing the instructor leaves the lesson's reference untouched.
	require.NoError(t, instructors.Delete(ctx, i.ID))
	got, err := lessons.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, instructor.ID(1), got.InstructorID)
	assert.Equal(t, "Bob", got.InstructorName)
}

func TestOpen_MigrationIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	// Re-running the schema against a populated store must not error or
	// drop data.
	students := NewStudentRepository(store)
	require.NoError(t, students.Create(context.Background(), newStudent("Amelia Clarke")))
	require.NoError(t, store.migrate())

	n, err := students.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
