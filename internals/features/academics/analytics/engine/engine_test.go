// file: internals/features/academics/analytics/engine/engine_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul_backend/internals/features/academics/exams/marks"
)

func daily(id, name, subject, date, mark string) DailyRow {
	return DailyRow{
		StudentID:   id,
		StudentName: name,
		Subject:     subject,
		UnitName:    "Unit 1",
		TestDate:    date,
		Marks:       marks.Parse(mark),
	}
}

func mock(id, name, date, total string) MockRow {
	return MockRow{
		StudentID:   id,
		StudentName: name,
		TestDate:    date,
		Total:       marks.Parse(total),
	}
}

func TestBuildReportEmpty(t *testing.T) {
	rep := BuildReport(ReportInput{TestType: TestTypeBoth, TotalStudents: 10})

	assert.Equal(t, 0.0, rep.DailyStats.AvgScore)
	assert.Equal(t, 0, rep.DailyStats.TopScore)
	assert.Equal(t, 0, rep.DailyStats.LowestScore)
	assert.Empty(t, rep.DailyTrend)
	assert.Empty(t, rep.MockTrend)
	assert.Empty(t, rep.DailyDistribution)
	assert.Empty(t, rep.MockSubjectBreakdown)
	assert.Empty(t, rep.TopStudents)
	assert.Equal(t, 0.0, rep.Participation.DailyRate)
}

func TestDailyTrendTwoDates(t *testing.T) {
	rows := []DailyRow{
		daily("S1", "Anu", "Physics", "2024-01-01", "80"),
		daily("S2", "Bala", "Physics", "2024-01-01", "90"),
		daily("S3", "Charu", "Physics", "2024-01-01", "70"),
		daily("S1", "Anu", "Physics", "2024-01-02", "85"),
		daily("S2", "Bala", "Physics", "2024-01-02", "95"),
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 3, Daily: rows})

	assert.Equal(t, 84.0, rep.DailyStats.AvgScore)
	assert.Equal(t, 95, rep.DailyStats.TopScore)
	assert.Equal(t, 70, rep.DailyStats.LowestScore)
	assert.Equal(t, 3, rep.DailyStats.StudentsTested)

	require.Len(t, rep.DailyTrend, 2)
	first := rep.DailyTrend[0]
	assert.Equal(t, "2024-01-01", first.Date)
	assert.Equal(t, 80.0, first.Avg)
	assert.Equal(t, 90, first.Top)
	assert.Equal(t, 70, first.Low)
	assert.Equal(t, 3, first.Students)

	second := rep.DailyTrend[1]
	assert.Equal(t, "2024-01-02", second.Date)
	assert.Equal(t, 90.0, second.Avg)
	assert.Equal(t, 95, second.Top)
	assert.Equal(t, 85, second.Low)
	assert.Equal(t, 2, second.Students)
}

func TestSentinelExcludedFromAggregates(t *testing.T) {
	rows := []DailyRow{
		daily("S1", "Anu", "Maths", "2024-02-01", "60"),
		daily("S2", "Bala", "Maths", "2024-02-01", "A"),
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 2, Daily: rows})

	assert.Equal(t, 60.0, rep.DailyStats.AvgScore)
	assert.Equal(t, 60, rep.DailyStats.TopScore)
	assert.Equal(t, 60, rep.DailyStats.LowestScore)
	// absent student still counts as tested
	assert.Equal(t, 2, rep.DailyStats.StudentsTested)
}

func TestNegativeMarksAggregate(t *testing.T) {
	rows := []DailyRow{
		daily("S1", "Anu", "Physics", "2024-02-01", "-4"),
		daily("S2", "Bala", "Physics", "2024-02-01", "10"),
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 2, Daily: rows})

	assert.Equal(t, 3.0, rep.DailyStats.AvgScore)
	assert.Equal(t, 10, rep.DailyStats.TopScore)
	assert.Equal(t, -4, rep.DailyStats.LowestScore)
}

func TestSubjectFilterSkipsBreakdown(t *testing.T) {
	rows := []DailyRow{
		daily("S1", "Anu", "Physics", "2024-02-01", "50"),
		daily("S1", "Anu", "Chemistry", "2024-02-01", "90"),
	}
	rep := BuildReport(ReportInput{
		TestType:      TestTypeDaily,
		Subject:       "Physics",
		TotalStudents: 1,
		Daily:         rows,
	})

	// stats honor the filter
	assert.Equal(t, 50.0, rep.DailyStats.AvgScore)
	// breakdown always covers every subject
	require.Len(t, rep.DailySubjectBreakdown, 2)
	assert.Equal(t, "Chemistry", rep.DailySubjectBreakdown[0].Subject)
	assert.Equal(t, "Physics", rep.DailySubjectBreakdown[1].Subject)
}

func TestCombinedRankingMockOnlyStudent(t *testing.T) {
	dailyRows := []DailyRow{
		daily("S1", "Anu", "Maths", "2024-03-01", "80"),
	}
	mockRows := []MockRow{
		mock("S2", "Bala", "2024-03-05", "240"),
	}
	rep := BuildReport(ReportInput{
		TestType:      TestTypeBoth,
		TotalStudents: 2,
		Daily:         dailyRows,
		Mock:          mockRows,
	})

	require.Len(t, rep.TopStudents, 2)
	var mockOnly RankedStudent
	for _, r := range rep.TopStudents {
		if r.StudentID == "S2" {
			mockOnly = r
		}
	}
	assert.Equal(t, 0.0, mockOnly.DailyAvg)
	assert.Equal(t, 0, mockOnly.DailyTests)
	assert.Equal(t, 240.0, mockOnly.MockAvg)
	assert.Equal(t, mockOnly.MockAvg, mockOnly.OverallAvg)
}

func TestCombinedRankingBothSides(t *testing.T) {
	dailyRows := []DailyRow{
		daily("S1", "Anu", "Maths", "2024-03-01", "80"),
	}
	mockRows := []MockRow{
		mock("S1", "Anu", "2024-03-05", "60"),
	}
	rep := BuildReport(ReportInput{
		TestType:      TestTypeBoth,
		TotalStudents: 1,
		Daily:         dailyRows,
		Mock:          mockRows,
	})

	require.Len(t, rep.TopStudents, 1)
	assert.Equal(t, 70.0, rep.TopStudents[0].OverallAvg)
}

func TestRankingTieBreakByStudentID(t *testing.T) {
	rows := []DailyRow{
		daily("S2", "Bala", "Maths", "2024-03-01", "80"),
		daily("S1", "Anu", "Maths", "2024-03-01", "80"),
		daily("S3", "Charu", "Maths", "2024-03-01", "70"),
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 3, Daily: rows})

	require.Len(t, rep.TopStudents, 3)
	assert.Equal(t, "S1", rep.TopStudents[0].StudentID)
	assert.Equal(t, "S2", rep.TopStudents[1].StudentID)
	assert.Equal(t, "S3", rep.TopStudents[2].StudentID)
}

func TestBottomStudentsWorstFirst(t *testing.T) {
	rows := []DailyRow{}
	names := []string{"Anu", "Bala", "Charu", "Devi", "Esha", "Farid", "Gita"}
	scores := []string{"10", "20", "30", "40", "50", "60", "70"}
	for i := range names {
		rows = append(rows, daily("S"+string(rune('1'+i)), names[i], "Maths", "2024-03-01", scores[i]))
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 7, Daily: rows})

	require.Len(t, rep.TopStudents, 5)
	require.Len(t, rep.BottomStudents, 5)
	assert.Equal(t, 70.0, rep.TopStudents[0].OverallAvg)
	assert.Equal(t, 10.0, rep.BottomStudents[0].OverallAvg)
	assert.Equal(t, 50.0, rep.BottomStudents[4].OverallAvg)
}

func TestDistributionPartitionsStudents(t *testing.T) {
	rows := []DailyRow{
		daily("S1", "Anu", "Maths", "2024-03-01", "25"),
		daily("S2", "Bala", "Maths", "2024-03-01", "26"),
		daily("S3", "Charu", "Maths", "2024-03-01", "75"),
		daily("S4", "Devi", "Maths", "2024-03-01", "76"),
		daily("S5", "Esha", "Maths", "2024-03-01", "110"),
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 5, Daily: rows})

	require.Len(t, rep.DailyDistribution, 4)
	total := 0
	for _, b := range rep.DailyDistribution {
		total += b.Count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 1, rep.DailyDistribution[0].Count) // 25
	assert.Equal(t, 1, rep.DailyDistribution[1].Count) // 26
	assert.Equal(t, 1, rep.DailyDistribution[2].Count) // 75
	assert.Equal(t, 2, rep.DailyDistribution[3].Count) // 76, 110 (no clamping)
}

func TestParticipationZeroStudents(t *testing.T) {
	rep := BuildReport(ReportInput{TestType: TestTypeBoth, TotalStudents: 0})

	assert.Equal(t, 0.0, rep.Participation.DailyRate)
	assert.Equal(t, 0.0, rep.Participation.MockRate)
}

func TestParticipationRates(t *testing.T) {
	rows := []DailyRow{
		daily("S1", "Anu", "Maths", "2024-03-01", "80"),
		daily("S2", "Bala", "Maths", "2024-03-01", "70"),
	}
	rep := BuildReport(ReportInput{TestType: TestTypeDaily, TotalStudents: 3, Daily: rows})

	assert.Equal(t, 2, rep.Participation.DailyTested)
	assert.Equal(t, 66.7, rep.Participation.DailyRate)
}

func TestMockSubjectBreakdownFixedOrder(t *testing.T) {
	rows := []MockRow{
		{
			StudentID: "S1", StudentName: "Anu", TestDate: "2024-04-01",
			Maths:     marks.Parse("50"),
			Physics:   marks.Parse("A"),
			Chemistry: marks.Parse("70"),
			Biology:   marks.Parse("-"),
			Total:     marks.Parse("120"),
		},
		{
			StudentID: "S2", StudentName: "Bala", TestDate: "2024-04-01",
			Maths:     marks.Parse("60"),
			Physics:   marks.Parse("80"),
			Chemistry: marks.Parse("A"),
			Biology:   marks.Parse("-"),
			Total:     marks.Parse("140"),
		},
	}
	rep := BuildReport(ReportInput{TestType: TestTypeMock, TotalStudents: 2, Mock: rows})

	require.Len(t, rep.MockSubjectBreakdown, 4)
	assert.Equal(t, "Maths", rep.MockSubjectBreakdown[0].Subject)
	assert.Equal(t, 55.0, rep.MockSubjectBreakdown[0].Avg)
	assert.Equal(t, 60, rep.MockSubjectBreakdown[0].Top)
	assert.Equal(t, 80.0, rep.MockSubjectBreakdown[1].Avg) // one numeric physics mark
	assert.Equal(t, "Biology", rep.MockSubjectBreakdown[3].Subject)
	assert.Equal(t, 0.0, rep.MockSubjectBreakdown[3].Avg)

	assert.Equal(t, 1, rep.MockStats.TotalTests) // distinct dates
	assert.Equal(t, 2, rep.MockStats.StudentsTested)
}

func TestRound1HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.1, Round1(0.05))
	assert.Equal(t, -0.1, Round1(-0.05))
	assert.Equal(t, 84.0, Round1(84.0))
	assert.Equal(t, 66.7, Round1(66.66666))
}
