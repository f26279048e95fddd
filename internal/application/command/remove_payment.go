package command

import (
	"context"

	"github.com/passit-driving/school-hub/internal/domain/payment"
)

// RemovePaymentCommand deletes a payment record by id.
type RemovePaymentCommand struct {
	ID payment.ID
}

// RemovePaymentHandler handles the RemovePaymentCommand.
type RemovePaymentHandler struct {
	payments payment.Repository
}

// NewRemovePaymentHandler creates a new RemovePaymentHandler.
func NewRemovePaymentHandler(payments payment.Repository) *RemovePaymentHandler {
	return &RemovePaymentHandler{payments: payments}
}

// Handle removes the payment.
// Returns payment.ErrNotFound if the id does not exist.
func (h *RemovePaymentHandler) Handle(ctx context.Context, cmd RemovePaymentCommand) error {
	return h.payments.Delete(ctx, cmd.ID)
}
