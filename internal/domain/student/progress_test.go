package student

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

func TestLevelProgress(t *testing.T) {
	got, err := LevelProgress("Level 1")
	assert.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = LevelProgress("Level 7")
	assert.NoError(t, err)
	assert.Equal(t, 70, got)

	// The pattern does not cap the level; "Level 12" is 120.
	got, err = LevelProgress("Level 12")
	assert.NoError(t, err)
	assert.Equal(t, 120, got)
}

func TestLevelProgress_RejectsFreeText(t *testing.T) {
	for _, label := range []string{
		"Beginner",
		"level 3",
		"Level  3",
		"Level 3 ",
		"Level three",
		"",
	} {
		_, err := LevelProgress(label)
		assert.True(t, shared.IsInvalidFormat(err), "label %q should fail", label)
	}
}

func TestStudent_LevelProgress(t *testing.T) {
	s := &Student{Progress: "Level 4"}
	got, err := s.LevelProgress()
	assert.NoError(t, err)
	assert.Equal(t, 40, got)
}
