// file: internals/features/academics/analytics/controller/groupwise_controller.go
package controller

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"gurukul_backend/internals/features/academics/analytics/engine"
	"gurukul_backend/internals/features/academics/exams/marks"
	helper "gurukul_backend/internals/helpers"
)

type subjectTally struct {
	tests      []fiber.Map
	sum        int
	numeric    int
	count      int
	max        int
	min        int
	hasNumeric bool
}

func (t *subjectTally) add(v marks.Value) {
	t.count++
	n, ok := v.Int()
	if !ok {
		return
	}
	t.sum += n
	t.numeric++
	if !t.hasNumeric || n > t.max {
		t.max = n
	}
	if !t.hasNumeric || n < t.min {
		t.min = n
	}
	t.hasNumeric = true
}

func (t *subjectTally) avg() float64 {
	if t.numeric == 0 {
		return 0
	}
	return float64(t.sum) / float64(t.numeric)
}

// Subjectwise groups daily-test performance by subject for each matching
// student and summarizes each subject across students, with per-student
// mock averages alongside.
func (ac *AnalysisController) Subjectwise(c *fiber.Ctx) error {
	f := parseFilters(c)

	dailyRows, err := ac.dailyJoined(f, true)
	if err != nil {
		return helper.JsonDBError(c, err, "daily_test")
	}
	mockRows, err := ac.mockJoined(f)
	if err != nil {
		return helper.JsonDBError(c, err, "mock_test")
	}

	type studentDaily struct {
		studentID   string
		studentName string
		grade       *string
		batch       string
		subjects    map[string]*subjectTally
	}
	daily := map[string]*studentDaily{}
	for _, r := range dailyRows {
		sd, ok := daily[r.StudentID]
		if !ok {
			sd = &studentDaily{
				studentID:   r.StudentID,
				studentName: r.StudentName,
				grade:       r.Grade,
				batch:       r.BatchName,
				subjects:    map[string]*subjectTally{},
			}
			daily[r.StudentID] = sd
		}
		subj := strOr(r.Subject)
		t, ok := sd.subjects[subj]
		if !ok {
			t = &subjectTally{}
			sd.subjects[subj] = t
		}
		v := marks.FromStored(r.TotalMarks)
		t.add(v)
		t.tests = append(t.tests, fiber.Map{
			"unit_name": r.UnitName,
			"marks":     v.String(),
			"date":      fmtTime(r.TestDate),
		})
	}

	type studentMock struct {
		studentName                      string
		maths, physics, chem, bio, count int
	}
	mock := map[string]*studentMock{}
	for _, r := range mockRows {
		sm, ok := mock[r.StudentID]
		if !ok {
			sm = &studentMock{studentName: r.StudentName}
			mock[r.StudentID] = sm
		}
		if n, ok := marks.FromStored(r.MathsMarks).Int(); ok {
			sm.maths += n
		}
		if n, ok := marks.FromStored(r.PhysicsMarks).Int(); ok {
			sm.physics += n
		}
		if n, ok := marks.FromStored(r.ChemistryMarks).Int(); ok {
			sm.chem += n
		}
		if n, ok := marks.FromStored(r.BiologyMarks).Int(); ok {
			sm.bio += n
		}
		sm.count++
	}

	ids := make([]string, 0, len(daily)+len(mock))
	seen := map[string]bool{}
	for sid := range daily {
		ids = append(ids, sid)
		seen[sid] = true
	}
	for sid := range mock {
		if !seen[sid] {
			ids = append(ids, sid)
		}
	}
	sort.Strings(ids)

	results := make([]fiber.Map, 0, len(ids))
	for _, sid := range ids {
		sd := daily[sid]
		sm := mock[sid]

		out := fiber.Map{"student_id": sid}
		subjectsOut := fiber.Map{}
		if sd != nil {
			out["student_name"] = sd.studentName
			out["grade"] = sd.grade
			out["batch"] = sd.batch
			for subj, t := range sd.subjects {
				subjectsOut[subj] = fiber.Map{
					"tests":       t.tests,
					"total_marks": t.sum,
					"count":       t.count,
				}
			}
		} else {
			out["student_name"] = sm.studentName
			out["grade"] = ""
			out["batch"] = ""
		}
		out["daily_tests"] = subjectsOut

		if sm != nil && sm.count > 0 {
			cnt := float64(sm.count)
			out["mock_averages"] = fiber.Map{
				"maths":     engine.Round1(float64(sm.maths) / cnt),
				"physics":   engine.Round1(float64(sm.physics) / cnt),
				"chemistry": engine.Round1(float64(sm.chem) / cnt),
				"biology":   engine.Round1(float64(sm.bio) / cnt),
			}
		} else {
			out["mock_averages"] = nil
		}
		results = append(results, out)
	}

	// Subject summary over per-student subject averages.
	type subjectScores struct {
		scores []float64
		tests  int
	}
	statScores := map[string]*subjectScores{}
	for _, sd := range daily {
		for subj, t := range sd.subjects {
			ss, ok := statScores[subj]
			if !ok {
				ss = &subjectScores{}
				statScores[subj] = ss
			}
			ss.scores = append(ss.scores, t.avg())
			ss.tests += t.count
		}
	}

	statsOut := fiber.Map{}
	for subj, ss := range statScores {
		sum, max, min := 0.0, ss.scores[0], ss.scores[0]
		for _, s := range ss.scores {
			sum += s
			if s > max {
				max = s
			}
			if s < min {
				min = s
			}
		}
		statsOut[subj] = fiber.Map{
			"average":        engine.Round1(sum / float64(len(ss.scores))),
			"top_score":      engine.Round1(max),
			"lowest":         engine.Round1(min),
			"total_tests":    ss.tests,
			"total_students": len(ss.scores),
		}
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"students":       results,
		"subject_stats":  statsOut,
		"total_students": len(results),
	})
}

// Branchwise aggregates daily and mock performance per student branch,
// with a per-branch student drill-down.
func (ac *AnalysisController) Branchwise(c *fiber.Ctx) error {
	f := parseFilters(c)

	dailyRows, err := ac.dailyJoined(f, true)
	if err != nil {
		return helper.JsonDBError(c, err, "daily_test")
	}
	mockRows, err := ac.mockJoined(f)
	if err != nil {
		return helper.JsonDBError(c, err, "mock_test")
	}

	type branchDaily struct {
		subjects map[string]*subjectTally
		students map[string]bool
	}
	daily := map[string]*branchDaily{}
	for _, r := range dailyRows {
		if r.Branch == nil {
			continue
		}
		branch := *r.Branch
		bd, ok := daily[branch]
		if !ok {
			bd = &branchDaily{subjects: map[string]*subjectTally{}, students: map[string]bool{}}
			daily[branch] = bd
		}
		subj := strOr(r.Subject)
		t, ok := bd.subjects[subj]
		if !ok {
			t = &subjectTally{}
			bd.subjects[subj] = t
		}
		t.add(marks.FromStored(r.TotalMarks))
		bd.students[r.StudentID] = true
	}

	type branchMock struct {
		maths, physics, chem, bio subjectTally
		total                     subjectTally
		students                  map[string]bool
	}
	mock := map[string]*branchMock{}
	for _, r := range mockRows {
		if r.Branch == nil {
			continue
		}
		branch := *r.Branch
		bm, ok := mock[branch]
		if !ok {
			bm = &branchMock{students: map[string]bool{}}
			mock[branch] = bm
		}
		bm.maths.add(marks.FromStored(r.MathsMarks))
		bm.physics.add(marks.FromStored(r.PhysicsMarks))
		bm.chem.add(marks.FromStored(r.ChemistryMarks))
		bm.bio.add(marks.FromStored(r.BiologyMarks))
		bm.total.add(marks.FromStored(r.TotalMarks))
		bm.students[r.StudentID] = true
	}

	branchNames := make([]string, 0, len(daily)+len(mock))
	seen := map[string]bool{}
	for b := range daily {
		branchNames = append(branchNames, b)
		seen[b] = true
	}
	for b := range mock {
		if !seen[b] {
			branchNames = append(branchNames, b)
		}
	}
	sort.Strings(branchNames)

	branchResults := make([]fiber.Map, 0, len(branchNames))
	for _, branch := range branchNames {
		bd := daily[branch]
		bm := mock[branch]

		dailyData := fiber.Map{}
		dailyStudents := 0
		if bd != nil {
			dailyStudents = len(bd.students)
			for subj, t := range bd.subjects {
				dailyData[subj] = fiber.Map{
					"average":    engine.Round1(t.avg()),
					"top_score":  t.max,
					"lowest":     t.min,
					"test_count": t.count,
				}
			}
		}

		var mockData fiber.Map
		mockStudents := 0
		if bm != nil {
			mockStudents = len(bm.students)
			mockData = fiber.Map{
				"maths":         engine.Round1(bm.maths.avg()),
				"physics":       engine.Round1(bm.physics.avg()),
				"chemistry":     engine.Round1(bm.chem.avg()),
				"biology":       engine.Round1(bm.bio.avg()),
				"avg_total":     engine.Round1(bm.total.avg()),
				"top_total":     bm.total.max,
				"lowest_total":  bm.total.min,
				"test_count":    bm.total.count,
				"student_count": mockStudents,
			}
		}

		studentCount := dailyStudents
		if mockStudents > studentCount {
			studentCount = mockStudents
		}
		branchResults = append(branchResults, fiber.Map{
			"branch":          branch,
			"daily_test_data": dailyData,
			"mock_test_data":  mockData,
			"student_count":   studentCount,
		})
	}

	// Per-branch student drill-down: subject averages per student.
	type branchStudent struct {
		studentName string
		grade       *string
		batch       string
		subjects    map[string]*subjectTally
	}
	byBranch := map[string]map[string]*branchStudent{}
	for _, r := range dailyRows {
		if r.Branch == nil {
			continue
		}
		branch := *r.Branch
		students, ok := byBranch[branch]
		if !ok {
			students = map[string]*branchStudent{}
			byBranch[branch] = students
		}
		bs, ok := students[r.StudentID]
		if !ok {
			bs = &branchStudent{
				studentName: r.StudentName,
				grade:       r.Grade,
				batch:       r.BatchName,
				subjects:    map[string]*subjectTally{},
			}
			students[r.StudentID] = bs
		}
		subj := strOr(r.Subject)
		t, ok := bs.subjects[subj]
		if !ok {
			t = &subjectTally{}
			bs.subjects[subj] = t
		}
		t.add(marks.FromStored(r.TotalMarks))
	}

	studentsByBranch := fiber.Map{}
	for branch, students := range byBranch {
		sids := make([]string, 0, len(students))
		for sid := range students {
			sids = append(sids, sid)
		}
		sort.Slice(sids, func(i, j int) bool {
			return students[sids[i]].studentName < students[sids[j]].studentName
		})

		out := make([]fiber.Map, 0, len(sids))
		for _, sid := range sids {
			bs := students[sid]
			subjectAvgs := fiber.Map{}
			for subj, t := range bs.subjects {
				subjectAvgs[subj] = engine.Round1(t.avg())
			}
			out = append(out, fiber.Map{
				"student_id":   sid,
				"student_name": bs.studentName,
				"grade":        bs.grade,
				"batch":        bs.batch,
				"subjects":     subjectAvgs,
			})
		}
		studentsByBranch[branch] = out
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"branches":           branchResults,
		"students_by_branch": studentsByBranch,
		"total_branches":     len(branchResults),
	})
}
