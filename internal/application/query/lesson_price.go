package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
)

// LessonPriceQuery quotes the price for a lesson type before booking.
type LessonPriceQuery struct {
	Type string
}

// LessonPriceResult carries the quoted price.
type LessonPriceResult struct {
	Type string `json:"lesson_type"`

	// Price is 0 for types outside the closed label set.
	Price int `json:"price"`

	// Recognized reports whether the type belongs to the label set, so
	// the caller can tell a free introductory quote from an unknown one.
	Recognized bool `json:"recognized"`
}

// LessonPriceHandler handles the LessonPriceQuery.
type LessonPriceHandler struct{}

// NewLessonPriceHandler creates a new LessonPriceHandler.
func NewLessonPriceHandler() *LessonPriceHandler {
	return &LessonPriceHandler{}
}

// Handle quotes the price from the fixed table.
func (h *LessonPriceHandler) Handle(_ context.Context, q LessonPriceQuery) (*LessonPriceResult, error) {
	t := lesson.Type(q.Type)
	return &LessonPriceResult{
		Type:       q.Type,
		Price:      t.Price(),
		Recognized: t.Recognized(),
	}, nil
}
