// file: internals/features/academics/exams/controller/exam_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFromBatchName(t *testing.T) {
	cases := []struct {
		name string
		want int
		ok   bool
	}{
		{"Grade 11", 11, true},
		{"12th NEET", 12, true},
		{"NEET 2025 Batch 2", 2025, true},
		{"Repeaters", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got := gradeFromBatchName(tc.name)
		if !tc.ok {
			assert.Nil(t, got, tc.name)
			continue
		}
		if assert.NotNil(t, got, tc.name) {
			assert.Equal(t, tc.want, *got, tc.name)
		}
	}
}

func TestDerefOr(t *testing.T) {
	s := "Chennai"
	assert.Equal(t, "Chennai", derefOr(&s))
	assert.Equal(t, "", derefOr(nil))
}
