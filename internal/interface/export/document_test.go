package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/report"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

func sampleSnapshot() *report.Snapshot {
	return &report.Snapshot{
		ExportID:    "b3e1f0aa-1111-2222-3333-444455556666",
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Students: []*student.Student{{
			ID: 1, Name: "Amelia Clarke", Address: "12 Mill Lane",
			Phone: "07700 900123", Progress: "Level 2",
			PaymentStatus: student.PaymentStatusUnpaid,
		}},
		Instructors: []*instructor.Instructor{{
			ID: 1, Name: "Ray Donovan", Phone: "07700 900456",
			Email: "ray@passit.example", Type: instructor.TypeFullTime,
		}},
		Lessons: []*lesson.Lesson{{
			ID: 1, StudentID: 1, StudentName: "Amelia Clarke",
			InstructorID: 1, InstructorName: "Ray Donovan",
			Type: lesson.TypeStandard, Date: "2026-03-14",
			Status: lesson.StatusUnpaid,
		}},
	}
}

func TestDocument_Layout(t *testing.T) {
	doc := Document(sampleSnapshot())

	assert.True(t, strings.HasPrefix(doc, "PASS IT DRIVING SCHOOL - RECORD EXPORT\n"))
	assert.Contains(t, doc, "Export ID: b3e1f0aa-1111-2222-3333-444455556666\n")
	assert.Contains(t, doc, "Generated: 2026-03-14 09:30:00 UTC\n")

	// Sections appear in fixed order with a dashed underline.
	assert.Contains(t, doc, "STUDENTS\n--------\n")
	assert.Contains(t, doc, "INSTRUCTORS\n-----------\n")
	assert.Contains(t, doc, "LESSONS\n-------\n")
	assert.Less(t, strings.Index(doc, "STUDENTS"), strings.Index(doc, "INSTRUCTORS"))
	assert.Less(t, strings.Index(doc, "INSTRUCTORS"), strings.Index(doc, "LESSONS"))

	assert.Contains(t, doc, "Name: Amelia Clarke\n")
	assert.Contains(t, doc, "Payment Status: Unpaid\n")
	assert.Contains(t, doc, "Instructor Type: Full-time\n")
	assert.Contains(t, doc, "Student Name: Amelia Clarke\n")
	assert.Contains(t, doc, "Lesson Type: Standard\n")
}

func TestDocument_EmptySnapshot(t *testing.T) {
	doc := Document(&report.Snapshot{
		ExportID:    "empty",
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	})

	// Sections still render with no records under them.
	assert.Contains(t, doc, "STUDENTS\n")
	assert.Contains(t, doc, "LESSONS\n")
	assert.NotContains(t, doc, "Name:")
}
