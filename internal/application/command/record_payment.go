package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// RecordPaymentCommand records a payment from a student.
//
// The amount is either supplied explicitly or derived from a lesson type
// via its price table; when both are given the explicit amount wins. The
// student reference is soft, matching the rest of the schema: the payment
// is recorded even for an id that no longer resolves.
type RecordPaymentCommand struct {
	StudentID student.ID

	// Amount in whole currency units. Zero means derive from LessonType.
	Amount int

	// LessonType prices the payment when Amount is zero.
	LessonType string

	// Date is the payment date in text form.
	Date string
}

// RecordPaymentResult contains the outcome of recording the payment.
type RecordPaymentResult struct {
	// PaymentID is the store-assigned id of the new payment.
	PaymentID payment.ID

	// Amount is the recorded amount after derivation.
	Amount int
}

// RecordPaymentHandler handles the RecordPaymentCommand.
type RecordPaymentHandler struct {
	payments payment.Repository
}

// NewRecordPaymentHandler creates a new RecordPaymentHandler.
func NewRecordPaymentHandler(payments payment.Repository) *RecordPaymentHandler {
	return &RecordPaymentHandler{payments: payments}
}

// Handle derives the amount if needed, validates and inserts the payment.
func (h *RecordPaymentHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error) {
	amount := cmd.Amount
	if amount == 0 {
		amount = lesson.Type(cmd.LessonType).Price()
	}

	p, err := payment.New(payment.NewParams{
		StudentID: cmd.StudentID,
		Amount:    amount,
		Date:      cmd.Date,
	})
	if err != nil {
		return nil, err
	}

	if err := h.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return &RecordPaymentResult{PaymentID: p.ID, Amount: p.Amount}, nil
}
