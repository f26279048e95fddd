package student

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

func TestNew_Valid(t *testing.T) {
	s, err := New(NewParams{
		Name:          "Amelia Clarke",
		Address:       "12 Mill Lane",
		Phone:         "07700 900123",
		Progress:      "Level 1",
		PaymentStatus: "Unpaid",
	})
	assert.NoError(t, err)
	assert.Equal(t, ID(0), s.ID)
	assert.Equal(t, PaymentStatusUnpaid, s.PaymentStatus)
}

func TestNew_EveryFieldRequired(t *testing.T) {
	params := []NewParams{
		{Address: "a", Phone: "p", Progress: "Level 1", PaymentStatus: "Paid"},
		{Name: "n", Phone: "p", Progress: "Level 1", PaymentStatus: "Paid"},
		{Name: "n", Address: "a", Progress: "Level 1", PaymentStatus: "Paid"},
		{Name: "n", Address: "a", Phone: "p", PaymentStatus: "Paid"},
		{Name: "n", Address: "a", Phone: "p", Progress: "Level 1"},
	}
	for i, p := range params {
		_, err := New(p)
		assert.True(t, shared.IsValidation(err), "case %d should fail", i)
	}
}

func TestNew_AcceptsUnrecognizedPaymentStatus(t *testing.T) {
	s, err := New(NewParams{
		Name:          "Amelia Clarke",
		Address:       "12 Mill Lane",
		Phone:         "07700 900123",
		Progress:      "Level 1",
		PaymentStatus: "Pending",
	})
	assert.NoError(t, err)
	assert.False(t, s.PaymentStatus.Recognized())
}
