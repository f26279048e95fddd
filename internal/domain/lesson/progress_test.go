package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lessonsOf(types ...Type) []*Lesson {
	out := make([]*Lesson, len(types))
	for i, typ := range types {
		out[i] = &Lesson{Type: typ}
	}
	return out
}

func TestProgress_Empty(t *testing.T) {
	assert.Equal(t, 0, Progress(nil))
	assert.Equal(t, 0, Progress([]*Lesson{}))
}

func TestProgress_LastMilestoneWins(t *testing.T) {
	// The fold keeps the milestone of the last recognized lesson in list
	// order; it does not sum and it does not take the maximum.
	assert.Equal(t, 60, Progress(lessonsOf(TypeIntroductory, TypeStandard)))
	assert.Equal(t, 20, Progress(lessonsOf(TypeStandard, TypeIntroductory)),
		"reversing the order changes the result")
	assert.Equal(t, 100, Progress(lessonsOf(TypeIntroductory, TypeStandard, TypePassPlus, TypeDrivingTest)))
}

func TestProgress_UnrecognizedTypesLeaveValueUnchanged(t *testing.T) {
	assert.Equal(t, 60, Progress(lessonsOf(TypeStandard, Type("Motorway"))))
	assert.Equal(t, 0, Progress(lessonsOf(Type("Motorway"))))
}
