package query

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// ListPaymentsQuery returns a student's payments in recording order.
type ListPaymentsQuery struct {
	StudentID student.ID
}

// ListPaymentsHandler handles the ListPaymentsQuery.
type ListPaymentsHandler struct {
	payments payment.Repository
}

// NewListPaymentsHandler creates a new ListPaymentsHandler.
func NewListPaymentsHandler(payments payment.Repository) *ListPaymentsHandler {
	return &ListPaymentsHandler{payments: payments}
}

// Handle returns the student's payments. The student id is a soft
// reference, so an unknown id simply yields an empty list.
func (h *ListPaymentsHandler) Handle(ctx context.Context, q ListPaymentsQuery) ([]*payment.Payment, error) {
	return h.payments.ListByStudent(ctx, q.StudentID)
}
