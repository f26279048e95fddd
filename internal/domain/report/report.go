// Package report contains the derived reporting types assembled by the
// report queries and consumed by the presentation and export layers.
package report

import (
	"time"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// Summary holds the aggregate counts shown on the report screen.
type Summary struct {
	// BookedLessons counts lessons whose status is exactly "Booked".
	// That label comes from an earlier booking flow and is disjoint from
	// the Paid/Unpaid vocabulary the rich schema writes, so the count is
	// 0 whenever only Paid/Unpaid statuses exist. The filter is kept
	// as-is rather than unified with the newer vocabulary.
	BookedLessons int `json:"booked_lessons"`

	// Students is the total number of students on record.
	Students int `json:"students"`

	// Instructors is the total number of instructors on record.
	Instructors int `json:"instructors"`
}

// Snapshot is a full dump of the three reported tables, assembled for
// display or export. The export renderer formats it into a document; the
// snapshot itself carries no presentation.
type Snapshot struct {
	// ExportID identifies the generated artifact.
	ExportID string `json:"export_id"`

	// GeneratedAt is when the snapshot was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	Students    []*student.Student       `json:"students"`
	Instructors []*instructor.Instructor `json:"instructors"`
	Lessons     []*lesson.Lesson         `json:"lessons"`
}
