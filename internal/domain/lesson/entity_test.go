package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

func TestType_Price(t *testing.T) {
	assert.Equal(t, 100, TypeIntroductory.Price())
	assert.Equal(t, 200, TypeStandard.Price())
	assert.Equal(t, 300, TypePassPlus.Price())
	assert.Equal(t, 350, TypeDrivingTest.Price())

	// Anything outside the closed label set prices at zero.
	assert.Equal(t, 0, Type("Motorway").Price())
	assert.Equal(t, 0, Type("").Price())
	assert.Equal(t, 0, Type("introductory").Price(), "labels are case-sensitive")
}

func TestType_Milestone(t *testing.T) {
	cases := []struct {
		typ     Type
		percent int
	}{
		{TypeIntroductory, 20},
		{TypeStandard, 60},
		{TypePassPlus, 95},
		{TypeDrivingTest, 100},
	}
	for _, c := range cases {
		got, ok := c.typ.Milestone()
		assert.True(t, ok)
		assert.Equal(t, c.percent, got)
	}

	_, ok := Type("Motorway").Milestone()
	assert.False(t, ok)
}

func TestType_Recognized(t *testing.T) {
	assert.True(t, TypePassPlus.Recognized())
	assert.False(t, Type("Pass plus").Recognized())
}

func TestNew_Valid(t *testing.T) {
	l, err := New(NewParams{
		StudentID:      3,
		StudentName:    "Amelia Clarke",
		InstructorID:   1,
		InstructorName: "Ray Donovan",
		Type:           "Standard",
		Date:           "2026-03-14",
		Status:         "Unpaid",
	})
	assert.NoError(t, err)
	assert.Equal(t, ID(0), l.ID, "id is assigned by the store")
	assert.Equal(t, TypeStandard, l.Type)
	assert.Equal(t, StatusUnpaid, l.Status)
	assert.Equal(t, "Amelia Clarke", l.StudentName)
}

func TestNew_RequiresReferences(t *testing.T) {
	_, err := New(NewParams{
		StudentName:    "Amelia Clarke",
		InstructorID:   1,
		InstructorName: "Ray Donovan",
		Type:           "Standard",
		Date:           "2026-03-14",
		Status:         "Unpaid",
	})
	assert.True(t, shared.IsValidation(err))
}

func TestNew_RequiresEveryField(t *testing.T) {
	base := NewParams{
		StudentID:      3,
		StudentName:    "Amelia Clarke",
		InstructorID:   1,
		InstructorName: "Ray Donovan",
		Type:           "Standard",
		Date:           "2026-03-14",
		Status:         "Unpaid",
	}

	blank := base
	blank.Date = "   "
	_, err := New(blank)
	assert.True(t, shared.IsValidation(err), "whitespace-only fields count as empty")
}

func TestNew_AcceptsUnrecognizedType(t *testing.T) {
	// The store accepts any label; pricing and progress just ignore it.
	l, err := New(NewParams{
		StudentID:      3,
		StudentName:    "Amelia Clarke",
		InstructorID:   1,
		InstructorName: "Ray Donovan",
		Type:           "Motorway",
		Date:           "2026-03-14",
		Status:         "Unpaid",
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, l.Type.Price())
}
