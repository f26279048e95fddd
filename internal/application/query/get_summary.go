package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/report"
	"github.com/passit-driving/school-hub/internal/domain/student"
	"github.com/passit-driving/school-hub/pkg/logger"
)

// SummaryCache caches the assembled summary between report requests.
// Implementations live in infrastructure/persistence; a nil cache
// disables caching entirely.
type SummaryCache interface {
	// Get returns the cached summary, or ok=false on a miss.
	Get(ctx context.Context) (s *report.Summary, ok bool, err error)

	// Set stores the summary until the cache TTL expires.
	Set(ctx context.Context, s *report.Summary) error
}

// GetSummaryQuery assembles the aggregate counts report.
type GetSummaryQuery struct {
	// BypassCache forces a fresh count even when a cache is configured.
	BypassCache bool
}

// GetSummaryHandler handles the GetSummaryQuery.
type GetSummaryHandler struct {
	students    student.Repository
	instructors instructor.Repository
	lessons     lesson.Repository
	cache       SummaryCache
	log         *logger.Logger
}

// NewGetSummaryHandler creates a new GetSummaryHandler. cache may be nil.
func NewGetSummaryHandler(
	students student.Repository,
	instructors instructor.Repository,
	lessons lesson.Repository,
	cache SummaryCache,
	log *logger.Logger,
) *GetSummaryHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GetSummaryHandler{
		students:    students,
		instructors: instructors,
		lessons:     lessons,
		cache:       cache,
		log:         log,
	}
}

// Handle returns the summary counts, serving from cache when possible.
// A cache failure is logged and counted as a miss, never surfaced: the
// report must come out even when the cache is down.
func (h *GetSummaryHandler) Handle(ctx context.Context, q GetSummaryQuery) (*report.Summary, error) {
	if h.cache != nil && !q.BypassCache {
		cached, ok, err := h.cache.Get(ctx)
		if err != nil {
			h.log.Warn("summary cache read failed", logger.Err(err))
		} else if ok {
			return cached, nil
		}
	}

	booked, err := h.lessons.CountByStatus(ctx, lesson.StatusBooked)
	if err != nil {
		return nil, err
	}

	students, err := h.students.Count(ctx)
	if err != nil {
		return nil, err
	}

	instructors, err := h.instructors.Count(ctx)
	if err != nil {
		return nil, err
	}

	s := &report.Summary{
		BookedLessons: booked,
		Students:      students,
		Instructors:   instructors,
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, s); err != nil {
			h.log.Warn("summary cache write failed", logger.Err(err))
		}
	}

	return s, nil
}
