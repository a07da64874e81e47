// file: internals/features/academics/analytics/controller/groupwise_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gurukul_backend/internals/features/academics/exams/marks"
)

func TestSubjectTallySkipsSentinels(t *testing.T) {
	var tally subjectTally
	tally.add(marks.Parse("80"))
	tally.add(marks.Parse("A"))
	tally.add(marks.Parse("-"))
	tally.add(marks.Parse("60"))

	assert.Equal(t, 4, tally.count)
	assert.Equal(t, 2, tally.numeric)
	assert.Equal(t, 80, tally.max)
	assert.Equal(t, 60, tally.min)
	assert.InDelta(t, 70.0, tally.avg(), 1e-9)
}

func TestSubjectTallyNegativeMarks(t *testing.T) {
	var tally subjectTally
	tally.add(marks.Parse("-5"))
	tally.add(marks.Parse("15"))

	assert.Equal(t, 15, tally.max)
	assert.Equal(t, -5, tally.min)
	assert.InDelta(t, 5.0, tally.avg(), 1e-9)
}

func TestSubjectTallyAllSentinels(t *testing.T) {
	var tally subjectTally
	tally.add(marks.Parse("A"))
	tally.add(marks.Parse(""))

	assert.Equal(t, 2, tally.count)
	assert.Equal(t, 0, tally.numeric)
	assert.Equal(t, 0.0, tally.avg())
}
