package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/report"
	"github.com/passit-driving/school-hub/internal/domain/student"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/sqlite"
)

// stubCache is an in-memory SummaryCache for exercising the cache path.
type stubCache struct {
	summary *report.Summary
	getErr  error
	sets    int
}

func (c *stubCache) Get(ctx context.Context) (*report.Summary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if c.summary == nil {
		return nil, false, nil
	}
	return c.summary, true, nil
}

func (c *stubCache) Set(ctx context.Context, s *report.Summary) error {
	c.summary = s
	c.sets++
	return nil
}

type reportFixture struct {
	students    student.Repository
	instructors instructor.Repository
	lessons     lesson.Repository
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return &reportFixture{
		students:    sqlite.NewStudentRepository(store),
		instructors: sqlite.NewInstructorRepository(store),
		lessons:     sqlite.NewLessonRepository(store),
	}
}

func (f *reportFixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	for _, name := range []string{"Amelia Clarke", "Ben Porter"} {
		require.NoError(t, f.students.Create(ctx, &student.Student{
			Name: name, Address: "12 Mill Lane", Phone: "07700 900123",
			Progress: "Level 1", PaymentStatus: student.PaymentStatusUnpaid,
		}))
	}
	require.NoError(t, f.instructors.Create(ctx, &instructor.Instructor{
		Name: "Ray Donovan", Phone: "07700 900456",
		Email: "ray@passit.example", Type: instructor.TypeFullTime,
	}))

	for _, status := range []lesson.Status{lesson.StatusBooked, lesson.StatusPaid} {
		require.NoError(t, f.lessons.Create(ctx, &lesson.Lesson{
			StudentID: 1, StudentName: "Amelia Clarke",
			InstructorID: 1, InstructorName: "Ray Donovan",
			Type: lesson.TypeStandard, Date: "2026-03-14", Status: status,
		}))
	}
}

func TestGetSummary_EmptyStore(t *testing.T) {
	f := newReportFixture(t)

	handler := NewGetSummaryHandler(f.students, f.instructors, f.lessons, nil, nil)
	s, err := handler.Handle(context.Background(), GetSummaryQuery{})
	require.NoError(t, err)
	assert.Equal(t, &report.Summary{}, s)
}

func TestGetSummary_CountsBookedLabelOnly(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)

	handler := NewGetSummaryHandler(f.students, f.instructors, f.lessons, nil, nil)
	s, err := handler.Handle(context.Background(), GetSummaryQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Students)
	assert.Equal(t, 1, s.Instructors)
	assert.Equal(t, 1, s.BookedLessons, "the Paid lesson does not count")
}

func TestGetSummary_ServesFromCache(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)
	cache := &stubCache{}

	handler := NewGetSummaryHandler(f.students, f.instructors, f.lessons, cache, nil)
	ctx := context.Background()

	first, err := handler.Handle(ctx, GetSummaryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "a miss fills the cache")

	// New rows are invisible until the entry expires or is bypassed.
	require.NoError(t, f.students.Create(ctx, &student.Student{
		Name: "Cara Singh", Address: "5 High St", Phone: "07700 900789",
		Progress: "Level 1", PaymentStatus: student.PaymentStatusUnpaid,
	}))

	cached, err := handler.Handle(ctx, GetSummaryQuery{})
	require.NoError(t, err)
	assert.Equal(t, first.Students, cached.Students)

	fresh, err := handler.Handle(ctx, GetSummaryQuery{BypassCache: true})
	require.NoError(t, err)
	assert.Equal(t, first.Students+1, fresh.Students)
}

func TestGetSummary_CacheFailureDegradesToFreshCount(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)
	cache := &stubCache{getErr: errors.New("connection refused")}

	handler := NewGetSummaryHandler(f.students, f.instructors, f.lessons, cache, nil)
	s, err := handler.Handle(context.Background(), GetSummaryQuery{})
	require.NoError(t, err, "a dead cache never fails the report")
	assert.Equal(t, 2, s.Students)
}

func TestGetSnapshot_DumpsThreeSections(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)

	handler := NewGetSnapshotHandler(f.students, f.instructors, f.lessons)
	snap, err := handler.Handle(context.Background(), GetSnapshotQuery{})
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ExportID)
	assert.False(t, snap.GeneratedAt.IsZero())
	assert.Len(t, snap.Students, 2)
	assert.Len(t, snap.Instructors, 1)
	assert.Len(t, snap.Lessons, 2)
}

func TestGetSnapshot_ExportIDsAreUnique(t *testing.T) {
	f := newReportFixture(t)

	handler := NewGetSnapshotHandler(f.students, f.instructors, f.lessons)
	a, err := handler.Handle(context.Background(), GetSnapshotQuery{})
	require.NoError(t, err)
	b, err := handler.Handle(context.Background(), GetSnapshotQuery{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ExportID, b.ExportID)
}
