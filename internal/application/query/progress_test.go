package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/shared"
	"github.com/passit-driving/school-hub/internal/domain/student"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/sqlite"
)

func bookLessons(t *testing.T, lessons lesson.Repository, studentID student.ID, types ...lesson.Type) {
	t.Helper()
	for _, typ := range types {
		require.NoError(t, lessons.Create(context.Background(), &lesson.Lesson{
			StudentID:      studentID,
			StudentName:    "Amelia Clarke",
			InstructorID:   1,
			InstructorName: "Ray Donovan",
			Type:           typ,
			Date:           "2026-03-14",
			Status:         lesson.StatusUnpaid,
		}))
	}
}

func TestStudentProgress_FoldsInInsertionOrder(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	lessons := sqlite.NewLessonRepository(store)
	bookLessons(t, lessons, 3, lesson.TypeIntroductory, lesson.TypeStandard)

	handler := NewStudentProgressHandler(lessons)
	res, err := handler.Handle(context.Background(), StudentProgressQuery{StudentID: 3})
	require.NoError(t, err)
	assert.Equal(t, 60, res.Percent)
	assert.Equal(t, 2, res.LessonCount)
}

func TestStudentProgress_NoLessonsIsZero(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// The student record is never consulted, so an id with no lessons
	// reports 0% rather than not-found.
	handler := NewStudentProgressHandler(sqlite.NewLessonRepository(store))
	res, err := handler.Handle(context.Background(), StudentProgressQuery{StudentID: 42})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Percent)
	assert.Equal(t, 0, res.LessonCount)
}

func TestLevelProgress_ParsesStoredLabel(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	students := sqlite.NewStudentRepository(store)
	s := &student.Student{
		Name: "Amelia Clarke", Address: "12 Mill Lane", Phone: "07700 900123",
		Progress: "Level 3", PaymentStatus: student.PaymentStatusUnpaid,
	}
	require.NoError(t, students.Create(context.Background(), s))

	handler := NewLevelProgressHandler(students)
	res, err := handler.Handle(context.Background(), LevelProgressQuery{StudentID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, 30, res.Percent)
}

func TestLevelProgress_FreeTextLabelFails(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	students := sqlite.NewStudentRepository(store)
	s := &student.Student{
		Name: "Amelia Clarke", Address: "12 Mill Lane", Phone: "07700 900123",
		Progress: "Beginner", PaymentStatus: student.PaymentStatusUnpaid,
	}
	require.NoError(t, students.Create(context.Background(), s))

	handler := NewLevelProgressHandler(students)
	_, err = handler.Handle(context.Background(), LevelProgressQuery{StudentID: s.ID})
	assert.True(t, shared.IsInvalidFormat(err))
}
