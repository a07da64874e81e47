// file: internals/features/academics/analytics/engine/engine.go
//
// Pure aggregation over test rows loaded for one batch. Marks are stored
// as tagged strings, so every average/max/min here runs over the numeric
// subset after normalization; the store never does arithmetic on them.
package engine

import (
	"math"
	"sort"

	"gurukul_backend/internals/features/academics/exams/marks"
)

const (
	TestTypeDaily = "daily"
	TestTypeMock  = "mock"
	TestTypeBoth  = "both"
)

// DailyRow is one daily_test row joined with the student name.
type DailyRow struct {
	StudentID   string
	StudentName string
	Subject     string
	UnitName    string
	TestDate    string // yyyy-mm-dd
	Marks       marks.Value
}

// MockRow is one mock_test row joined with the student name.
type MockRow struct {
	StudentID   string
	StudentName string
	TestDate    string
	Maths       marks.Value
	Physics     marks.Value
	Chemistry   marks.Value
	Biology     marks.Value
	Total       marks.Value
}

type Stats struct {
	AvgScore       float64 `json:"avg_score"`
	TopScore       int     `json:"top_score"`
	LowestScore    int     `json:"lowest_score"`
	TotalTests     int     `json:"total_tests"`
	StudentsTested int     `json:"students_tested"`
}

type TrendPoint struct {
	Date     string  `json:"date"`
	Avg      float64 `json:"avg"`
	Top      int     `json:"top"`
	Low      int     `json:"low"`
	Students int     `json:"students"`
}

type SubjectStat struct {
	Subject  string  `json:"subject"`
	Avg      float64 `json:"avg"`
	Top      int     `json:"top"`
	Low      int     `json:"low"`
	Tests    int     `json:"tests"`
	Students int     `json:"students"`
}

type MockSubjectStat struct {
	Subject string  `json:"subject"`
	Avg     float64 `json:"avg"`
	Top     int     `json:"top"`
}

type StudentAverage struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Avg         float64 `json:"avg"`
	Tests       int     `json:"tests"`
}

type RankedStudent struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	DailyAvg    float64 `json:"daily_avg"`
	DailyTests  int     `json:"daily_tests"`
	MockAvg     float64 `json:"mock_avg"`
	MockTests   int     `json:"mock_tests"`
	OverallAvg  float64 `json:"overall_avg"`
}

type DistributionBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type Participation struct {
	TotalStudents int     `json:"total_students"`
	DailyTested   int     `json:"daily_tested"`
	MockTested    int     `json:"mock_tested"`
	DailyRate     float64 `json:"daily_rate"`
	MockRate      float64 `json:"mock_rate"`
}

// ReportInput holds rows already scoped to the batch and date range, plus
// the optional daily subject filter. The subject filter narrows stats,
// trend and rankings but never the subject breakdown.
type ReportInput struct {
	TestType      string
	Subject       string
	TotalStudents int
	Daily         []DailyRow
	Mock          []MockRow
}

type Report struct {
	DailyStats            Stats                `json:"daily_stats"`
	MockStats             Stats                `json:"mock_stats"`
	DailyTrend            []TrendPoint         `json:"daily_trend"`
	MockTrend             []TrendPoint         `json:"mock_trend"`
	DailySubjectBreakdown []SubjectStat        `json:"daily_subject_breakdown"`
	MockSubjectBreakdown  []MockSubjectStat    `json:"mock_subject_breakdown"`
	TopStudents           []RankedStudent      `json:"top_students"`
	BottomStudents        []RankedStudent      `json:"bottom_students"`
	DailyDistribution     []DistributionBucket `json:"daily_distribution"`
	MockDistribution      []DistributionBucket `json:"mock_distribution"`
	Participation         Participation        `json:"participation"`
}

// Round1 rounds to one decimal, half away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// BuildReport computes the full batch performance report from one
// consistent row set.
func BuildReport(in ReportInput) Report {
	rep := Report{
		DailyTrend:            []TrendPoint{},
		MockTrend:             []TrendPoint{},
		DailySubjectBreakdown: []SubjectStat{},
		MockSubjectBreakdown:  []MockSubjectStat{},
		DailyDistribution:     []DistributionBucket{},
		MockDistribution:      []DistributionBucket{},
	}

	var dailyAvgs, mockAvgs []StudentAverage

	if in.TestType == TestTypeDaily || in.TestType == TestTypeBoth {
		filtered := filterDaily(in.Daily, in.Subject)
		rep.DailyStats = dailyStats(filtered)
		rep.DailyTrend = dailyTrend(filtered)
		rep.DailySubjectBreakdown = dailySubjectBreakdown(in.Daily)
		dailyAvgs = dailyStudentAverages(filtered)
		rep.DailyDistribution = buildDistribution(dailyAvgs)
	}

	if in.TestType == TestTypeMock || in.TestType == TestTypeBoth {
		rep.MockStats = mockStats(in.Mock)
		rep.MockTrend = mockTrend(in.Mock)
		rep.MockSubjectBreakdown = mockSubjectBreakdown(in.Mock)
		mockAvgs = mockStudentAverages(in.Mock)
		rep.MockDistribution = buildDistribution(mockAvgs)
	}

	ranked := combineRankings(dailyAvgs, mockAvgs)
	rep.TopStudents = headN(ranked, 5)
	rep.BottomStudents = tailNReversed(ranked, 5)

	rep.Participation = Participation{
		TotalStudents: in.TotalStudents,
		DailyTested:   rep.DailyStats.StudentsTested,
		MockTested:    rep.MockStats.StudentsTested,
		DailyRate:     rate(rep.DailyStats.StudentsTested, in.TotalStudents),
		MockRate:      rate(rep.MockStats.StudentsTested, in.TotalStudents),
	}
	return rep
}

func filterDaily(rows []DailyRow, subject string) []DailyRow {
	if subject == "" {
		return rows
	}
	out := make([]DailyRow, 0, len(rows))
	for _, r := range rows {
		if r.Subject == subject {
			out = append(out, r)
		}
	}
	return out
}

// numericSummary folds numeric marks into running sum/count/max/min.
type numericSummary struct {
	sum, count, max, min int
}

func (a *numericSummary) add(n int) {
	if a.count == 0 || n > a.max {
		a.max = n
	}
	if a.count == 0 || n < a.min {
		a.min = n
	}
	a.sum += n
	a.count++
}

func (a numericSummary) avg() float64 {
	if a.count == 0 {
		return 0
	}
	return Round1(float64(a.sum) / float64(a.count))
}

func dailyStats(rows []DailyRow) Stats {
	var agg numericSummary
	occasions := map[[3]string]struct{}{}
	students := map[string]struct{}{}
	for _, r := range rows {
		if n, ok := r.Marks.Int(); ok {
			agg.add(n)
		}
		occasions[[3]string{r.TestDate, r.Subject, r.UnitName}] = struct{}{}
		students[r.StudentID] = struct{}{}
	}
	return Stats{
		AvgScore:       agg.avg(),
		TopScore:       agg.max,
		LowestScore:    agg.min,
		TotalTests:     len(occasions),
		StudentsTested: len(students),
	}
}

func mockStats(rows []MockRow) Stats {
	var agg numericSummary
	dates := map[string]struct{}{}
	students := map[string]struct{}{}
	for _, r := range rows {
		if n, ok := r.Total.Int(); ok {
			agg.add(n)
		}
		dates[r.TestDate] = struct{}{}
		students[r.StudentID] = struct{}{}
	}
	return Stats{
		AvgScore:       agg.avg(),
		TopScore:       agg.max,
		LowestScore:    agg.min,
		TotalTests:     len(dates),
		StudentsTested: len(students),
	}
}

// trendBucket accumulates one trend point per test date.
type trendBucket struct {
	agg      numericSummary
	students map[string]struct{}
}

func trendFromBuckets(byDate map[string]*trendBucket) []TrendPoint {
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	out := make([]TrendPoint, 0, len(dates))
	for _, d := range dates {
		b := byDate[d]
		out = append(out, TrendPoint{
			Date:     d,
			Avg:      b.agg.avg(),
			Top:      b.agg.max,
			Low:      b.agg.min,
			Students: len(b.students),
		})
	}
	return out
}

func dailyTrend(rows []DailyRow) []TrendPoint {
	byDate := map[string]*trendBucket{}
	for _, r := range rows {
		b, ok := byDate[r.TestDate]
		if !ok {
			b = &trendBucket{students: map[string]struct{}{}}
			byDate[r.TestDate] = b
		}
		if n, ok := r.Marks.Int(); ok {
			b.agg.add(n)
		}
		b.students[r.StudentID] = struct{}{}
	}
	return trendFromBuckets(byDate)
}

func mockTrend(rows []MockRow) []TrendPoint {
	byDate := map[string]*trendBucket{}
	for _, r := range rows {
		b, ok := byDate[r.TestDate]
		if !ok {
			b = &trendBucket{students: map[string]struct{}{}}
			byDate[r.TestDate] = b
		}
		if n, ok := r.Total.Int(); ok {
			b.agg.add(n)
		}
		b.students[r.StudentID] = struct{}{}
	}
	return trendFromBuckets(byDate)
}

func dailySubjectBreakdown(rows []DailyRow) []SubjectStat {
	type subjectBucket struct {
		agg      numericSummary
		tests    int
		students map[string]struct{}
	}
	bySubject := map[string]*subjectBucket{}
	for _, r := range rows {
		b, ok := bySubject[r.Subject]
		if !ok {
			b = &subjectBucket{students: map[string]struct{}{}}
			bySubject[r.Subject] = b
		}
		if n, ok := r.Marks.Int(); ok {
			b.agg.add(n)
		}
		b.tests++
		b.students[r.StudentID] = struct{}{}
	}
	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	out := make([]SubjectStat, 0, len(subjects))
	for _, subj := range subjects {
		b := bySubject[subj]
		out = append(out, SubjectStat{
			Subject:  subj,
			Avg:      b.agg.avg(),
			Top:      b.agg.max,
			Low:      b.agg.min,
			Tests:    b.tests,
			Students: len(b.students),
		})
	}
	return out
}

// mockSubjectBreakdown reports the four fixed subjects once any mock rows
// exist; mock tests carry no subject dimension of their own.
func mockSubjectBreakdown(rows []MockRow) []MockSubjectStat {
	if len(rows) == 0 {
		return []MockSubjectStat{}
	}
	subjects := []struct {
		name string
		pick func(MockRow) marks.Value
	}{
		{"Maths", func(r MockRow) marks.Value { return r.Maths }},
		{"Physics", func(r MockRow) marks.Value { return r.Physics }},
		{"Chemistry", func(r MockRow) marks.Value { return r.Chemistry }},
		{"Biology", func(r MockRow) marks.Value { return r.Biology }},
	}
	out := make([]MockSubjectStat, 0, len(subjects))
	for _, s := range subjects {
		var agg numericSummary
		for _, r := range rows {
			if n, ok := s.pick(r).Int(); ok {
				agg.add(n)
			}
		}
		out = append(out, MockSubjectStat{Subject: s.name, Avg: agg.avg(), Top: agg.max})
	}
	return out
}

// studentBucket accumulates one student's tests for ranking.
type studentBucket struct {
	name  string
	agg   numericSummary
	tests int
}

func sortedAverages(byStudent map[string]*studentBucket) []StudentAverage {
	out := make([]StudentAverage, 0, len(byStudent))
	for id, b := range byStudent {
		out = append(out, StudentAverage{
			StudentID:   id,
			StudentName: b.name,
			Avg:         b.agg.avg(),
			Tests:       b.tests,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Avg != out[j].Avg {
			return out[i].Avg > out[j].Avg
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out
}

func dailyStudentAverages(rows []DailyRow) []StudentAverage {
	byStudent := map[string]*studentBucket{}
	for _, r := range rows {
		b, ok := byStudent[r.StudentID]
		if !ok {
			b = &studentBucket{name: r.StudentName}
			byStudent[r.StudentID] = b
		}
		if n, ok := r.Marks.Int(); ok {
			b.agg.add(n)
		}
		b.tests++
	}
	return sortedAverages(byStudent)
}

func mockStudentAverages(rows []MockRow) []StudentAverage {
	byStudent := map[string]*studentBucket{}
	for _, r := range rows {
		b, ok := byStudent[r.StudentID]
		if !ok {
			b = &studentBucket{name: r.StudentName}
			byStudent[r.StudentID] = b
		}
		if n, ok := r.Total.Int(); ok {
			b.agg.add(n)
		}
		b.tests++
	}
	return sortedAverages(byStudent)
}

// combineRankings merges the two per-student lists; overall_avg averages the
// sides that actually have tests, so a mock-only student ranks by mock alone.
func combineRankings(daily, mock []StudentAverage) []RankedStudent {
	byID := map[string]*RankedStudent{}
	order := []string{}
	for _, s := range daily {
		byID[s.StudentID] = &RankedStudent{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			DailyAvg:    s.Avg,
			DailyTests:  s.Tests,
		}
		order = append(order, s.StudentID)
	}
	for _, s := range mock {
		if r, ok := byID[s.StudentID]; ok {
			r.MockAvg = s.Avg
			r.MockTests = s.Tests
			continue
		}
		byID[s.StudentID] = &RankedStudent{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			MockAvg:     s.Avg,
			MockTests:   s.Tests,
		}
		order = append(order, s.StudentID)
	}

	out := make([]RankedStudent, 0, len(order))
	for _, id := range order {
		r := byID[id]
		total, sides := 0.0, 0
		if r.DailyTests > 0 {
			total += r.DailyAvg
			sides++
		}
		if r.MockTests > 0 {
			total += r.MockAvg
			sides++
		}
		if sides > 0 {
			r.OverallAvg = Round1(total / float64(sides))
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OverallAvg != out[j].OverallAvg {
			return out[i].OverallAvg > out[j].OverallAvg
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out
}

func headN(rs []RankedStudent, n int) []RankedStudent {
	if len(rs) < n {
		n = len(rs)
	}
	out := make([]RankedStudent, n)
	copy(out, rs[:n])
	return out
}

// tailNReversed returns the lowest n, worst first.
func tailNReversed(rs []RankedStudent, n int) []RankedStudent {
	if len(rs) < n {
		n = len(rs)
	}
	out := make([]RankedStudent, 0, n)
	for i := len(rs) - 1; i >= len(rs)-n; i-- {
		out = append(out, rs[i])
	}
	return out
}

// buildDistribution buckets per-student averages: <=25, <=50, <=75, else.
// Out-of-range averages classify by the same boundaries, no clamping.
func buildDistribution(avgs []StudentAverage) []DistributionBucket {
	if len(avgs) == 0 {
		return []DistributionBucket{}
	}
	buckets := []DistributionBucket{
		{Range: "0-25"}, {Range: "26-50"}, {Range: "51-75"}, {Range: "76-100"},
	}
	for _, s := range avgs {
		switch {
		case s.Avg <= 25:
			buckets[0].Count++
		case s.Avg <= 50:
			buckets[1].Count++
		case s.Avg <= 75:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}

func rate(tested, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(tested) / float64(total) * 100)
}
