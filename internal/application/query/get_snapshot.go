package query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/report"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// GetSnapshotQuery assembles a full dump of students, instructors and
// lessons for display or export.
type GetSnapshotQuery struct{}

// GetSnapshotHandler handles the GetSnapshotQuery.
type GetSnapshotHandler struct {
	students    student.Repository
	instructors instructor.Repository
	lessons     lesson.Repository
}

// NewGetSnapshotHandler creates a new GetSnapshotHandler.
func NewGetSnapshotHandler(
	students student.Repository,
	instructors instructor.Repository,
	lessons lesson.Repository,
) *GetSnapshotHandler {
	return &GetSnapshotHandler{
		students:    students,
		instructors: instructors,
		lessons:     lessons,
	}
}

// Handle dumps the three tables and stamps the snapshot with an export id.
func (h *GetSnapshotHandler) Handle(ctx context.Context, _ GetSnapshotQuery) (*report.Snapshot, error) {
	students, err := h.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	instructors, err := h.instructors.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	lessons, err := h.lessons.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &report.Snapshot{
		ExportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Students:    students,
		Instructors: instructors,
		Lessons:     lessons,
	}, nil
}
