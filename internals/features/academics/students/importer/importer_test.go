// file: internals/features/academics/students/importer/importer_test.go
package importer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSafeStr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"plain", "Kumar", strPtr("Kumar")},
		{"trims whitespace", "  Kumar  ", strPtr("Kumar")},
		{"strips float artifact", "9876543210.0", strPtr("9876543210")},
		{"negative float artifact", "-42.0", strPtr("-42")},
		{"keeps real decimal text", "12.5", strPtr("12.5")},
		{"keeps non numeric dot-zero", "v1.0", strPtr("v1.0")},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeStr(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *int
	}{
		{"plain", "85", intPtr(85)},
		{"float artifact", "85.0", intPtr(85)},
		{"negative", "-4", intPtr(-4)},
		{"truncates decimals", "85.7", intPtr(85)},
		{"garbage", "N/A", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeInt(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestSafeInt16(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *int16
	}{
		{"plain year", "2019", int16Ptr(2019)},
		{"float artifact", "2019.0", int16Ptr(2019)},
		{"above int16 range", "70000", nil},
		{"below int16 range", "-70000", nil},
		{"garbage", "soon", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeInt16(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseDate(t *testing.T) {
	d := ParseDate("2006-05-15")
	require.NotNil(t, d)
	assert.Equal(t, "2006-05-15", time.Time(*d).Format("2006-01-02"))

	d = ParseDate("15/05/2006")
	require.NotNil(t, d)
	assert.Equal(t, "2006-05-15", time.Time(*d).Format("2006-01-02"))

	// unparseable dates drop to nil instead of failing the row
	assert.Nil(t, ParseDate("not-a-date"))
	assert.Nil(t, ParseDate(""))
}

func buildSheet(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseSheet(t *testing.T) {
	buf := buildSheet(t, [][]any{
		{"student_id", "student_name", "grade", "student_mobile"},
		{"GRV001", "Anu", "12", "9876543210.0"},
		{"GRV002", "Bala", "", ""},
	})

	rows, err := ParseSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "GRV001", rows[0].Fields["student_id"])
	assert.Equal(t, 3, rows[1].Index)
	assert.Equal(t, "Bala", rows[1].Fields["student_name"])
}

func TestParseSheetMissingColumns(t *testing.T) {
	buf := buildSheet(t, [][]any{
		{"roll_no", "name"},
		{"1", "Anu"},
	})

	_, err := ParseSheet(buf)
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestParseSheetSkipsBlankRows(t *testing.T) {
	buf := buildSheet(t, [][]any{
		{"student_id", "student_name"},
		{"GRV001", "Anu"},
		{"", ""},
		{"GRV003", "Charu"},
	})

	rows, err := ParseSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "GRV003", rows[1].Fields["student_id"])
	assert.Equal(t, 4, rows[1].Index)
}

func TestBuildRecord(t *testing.T) {
	row := Row{
		Index: 2,
		Fields: map[string]string{
			"student_id":            "12345.0",
			"student_name":          "Anu",
			"dob":                   "2006-05-15",
			"grade":                 "12",
			"enrollment_year":       "2024.0",
			"guardian_name":         "Raman",
			"tenth_school_name":     "GHSS Salem",
			"tenth_maths":           "98.0",
			"entrance_exam_name":    "NEET",
			"entrance_total_marks":  "540",
			"entrance_overall_rank": "1200.0",
			"counselling_forum":     "TNEA",
		},
	}

	rec := BuildRecord(row, 7)

	// the float artifact on the id is stripped before storage
	assert.Equal(t, "12345", rec.Student.StudentID)
	assert.Equal(t, "Anu", rec.Student.StudentName)
	require.NotNil(t, rec.Student.BatchID)
	assert.Equal(t, 7, *rec.Student.BatchID)
	require.NotNil(t, rec.Student.DOB)
	require.NotNil(t, rec.Student.EnrollmentYear)
	assert.Equal(t, int16(2024), *rec.Student.EnrollmentYear)

	assert.Equal(t, "12345", rec.Parent.StudentID)
	require.NotNil(t, rec.Parent.GuardianName)
	assert.Equal(t, "Raman", *rec.Parent.GuardianName)

	require.NotNil(t, rec.Tenth)
	require.NotNil(t, rec.Tenth.Maths)
	assert.Equal(t, 98, *rec.Tenth.Maths)
	assert.Nil(t, rec.Twelfth)

	require.Len(t, rec.EntranceExams, 1)
	require.NotNil(t, rec.EntranceExams[0].OverallRank)
	assert.Equal(t, 1200, *rec.EntranceExams[0].OverallRank)

	require.NotNil(t, rec.Counselling)
	require.NotNil(t, rec.Counselling.Forum)
	assert.Equal(t, "TNEA", *rec.Counselling.Forum)
}

func TestBuildRecordBadDateDropped(t *testing.T) {
	row := Row{
		Index: 2,
		Fields: map[string]string{
			"student_id":   "GRV001",
			"student_name": "Anu",
			"dob":          "sometime in May",
		},
	}

	rec := BuildRecord(row, 1)
	assert.Nil(t, rec.Student.DOB)
	assert.Nil(t, rec.Tenth)
	assert.Empty(t, rec.EntranceExams)
	assert.Nil(t, rec.Counselling)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func int16Ptr(n int16) *int16 { return &n }
