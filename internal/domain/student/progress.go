package student

import (
	"regexp"
	"strconv"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

// levelPattern matches the self-reported progress labels, "Level <integer>".
var levelPattern = regexp.MustCompile(`^Level ([0-9]+)$`)

// LevelProgress converts a "Level N" progress label into a completion
// percentage of 10 x N. Labels that do not match the pattern fail with a
// format error; the computation for that record is aborted rather than
// guessed at.
//
// This is the level-based progress notion tied to Student.Progress. It is
// distinct from the lesson-derived progress computed from the student's
// booked lessons (see the lesson package).
func LevelProgress(label string) (int, error) {
	m := levelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, shared.NewDomainError("student", "LevelProgress", shared.ErrInvalidFormat,
			"progress label "+strconv.Quote(label)+" does not match \"Level <integer>\"")
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, shared.WrapError("student", "LevelProgress", shared.ErrInvalidFormat,
			"progress label "+strconv.Quote(label)+" has a non-numeric level", err)
	}

	return n * 10, nil
}

// LevelProgress reports the student's level-based completion percentage.
func (s *Student) LevelProgress() (int, error) {
	return LevelProgress(s.Progress)
}
