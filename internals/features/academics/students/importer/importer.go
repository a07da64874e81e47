// file: internals/features/academics/students/importer/importer.go
//
// Bulk student import: one spreadsheet row becomes a student record plus
// its related sub-records, persisted under a per-row savepoint so a bad
// row never takes down its neighbours.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	helper "gurukul_backend/internals/helpers"

	StudentModel "gurukul_backend/internals/features/academics/students/model"
)

// ErrMissingColumns marks a sheet without the two required columns.
var ErrMissingColumns = errors.New("sheet must contain 'student_id' and 'student_name' columns")

const maxReportedErrors = 10

// Row is one data row of the sheet, keyed by header name.
type Row struct {
	// Index is the spreadsheet row number (header is row 1).
	Index  int
	Fields map[string]string
}

func (r Row) get(col string) string {
	return r.Fields[col]
}

// Record is the full per-student write set built from one row.
type Record struct {
	Student       StudentModel.StudentModel
	Parent        StudentModel.ParentInfoModel
	Tenth         *StudentModel.TenthMarkModel
	Twelfth       *StudentModel.TwelfthMarkModel
	EntranceExams []StudentModel.EntranceExamModel
	Counselling   *StudentModel.CounsellingDetailModel
}

type RowError struct {
	Row       int    `json:"row"`
	StudentID string `json:"student_id"`
	Error     string `json:"error"`
}

type Outcome struct {
	Message      string     `json:"message"`
	SuccessCount int        `json:"success_count"`
	ErrorCount   int        `json:"error_count"`
	Errors       []RowError `json:"errors"`
}

// ParseSheet reads the first sheet of an xlsx stream into rows keyed by the
// header line. Returns ErrMissingColumns when the required columns are absent.
func ParseSheet(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, ErrMissingColumns
	}

	headers := make([]string, len(raw[0]))
	seen := map[string]bool{}
	for i, h := range raw[0] {
		h = strings.TrimSpace(h)
		headers[i] = h
		seen[h] = true
	}
	if !seen["student_id"] || !seen["student_name"] {
		return nil, ErrMissingColumns
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		fields := map[string]string{}
		empty := true
		for c, cell := range cells {
			if c >= len(headers) || headers[c] == "" {
				continue
			}
			fields[headers[c]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		// +2: sheet rows are 1-indexed and row 1 is the header
		rows = append(rows, Row{Index: i + 2, Fields: fields})
	}
	return rows, nil
}

// BuildRecord coerces one row into the write set for the given batch.
func BuildRecord(row Row, batchID int) Record {
	studentID := derefOr(SafeStr(row.get("student_id")), "")
	rec := Record{
		Student: StudentModel.StudentModel{
			StudentID:      studentID,
			BatchID:        &batchID,
			StudentName:    derefOr(SafeStr(row.get("student_name")), ""),
			DOB:            ParseDate(row.get("dob")),
			Grade:          SafeStr(row.get("grade")),
			Community:      SafeStr(row.get("community")),
			EnrollmentYear: SafeInt16(row.get("enrollment_year")),
			Course:         SafeStr(row.get("course")),
			Branch:         SafeStr(row.get("branch")),
			Gender:         SafeStr(row.get("gender")),
			StudentMobile:  SafeStr(row.get("student_mobile")),
			AadharNo:       SafeStr(row.get("aadhar_no")),
			ApaarID:        SafeStr(row.get("apaar_id")),
			Email:          SafeStr(row.get("email")),
			SchoolName:     SafeStr(row.get("school_name")),
		},
		Parent: StudentModel.ParentInfoModel{
			StudentID:          studentID,
			GuardianName:       SafeStr(row.get("guardian_name")),
			GuardianOccupation: SafeStr(row.get("guardian_occupation")),
			GuardianMobile:     SafeStr(row.get("guardian_mobile")),
			GuardianEmail:      SafeStr(row.get("guardian_email")),
			FatherName:         SafeStr(row.get("father_name")),
			FatherOccupation:   SafeStr(row.get("father_occupation")),
			FatherMobile:       SafeStr(row.get("father_mobile")),
			FatherEmail:        SafeStr(row.get("father_email")),
			MotherName:         SafeStr(row.get("mother_name")),
			MotherOccupation:   SafeStr(row.get("mother_occupation")),
			MotherMobile:       SafeStr(row.get("mother_mobile")),
			MotherEmail:        SafeStr(row.get("mother_email")),
			SiblingName:        SafeStr(row.get("sibling_name")),
			SiblingGrade:       SafeStr(row.get("sibling_grade")),
			SiblingSchool:      SafeStr(row.get("sibling_school")),
			SiblingCollege:     SafeStr(row.get("sibling_college")),
		},
	}

	if SafeStr(row.get("tenth_school_name")) != nil || SafeInt16(row.get("tenth_year_of_passing")) != nil {
		rec.Tenth = &StudentModel.TenthMarkModel{
			StudentID:     studentID,
			SchoolName:    SafeStr(row.get("tenth_school_name")),
			YearOfPassing: SafeInt16(row.get("tenth_year_of_passing")),
			BoardOfStudy:  SafeStr(row.get("tenth_board_of_study")),
			English:       SafeInt(row.get("tenth_english")),
			Tamil:         SafeInt(row.get("tenth_tamil")),
			Hindi:         SafeInt(row.get("tenth_hindi")),
			Maths:         SafeInt(row.get("tenth_maths")),
			Science:       SafeInt(row.get("tenth_science")),
			SocialScience: SafeInt(row.get("tenth_social_science")),
			TotalMarks:    SafeInt(row.get("tenth_total_marks")),
		}
	}

	if SafeStr(row.get("twelfth_school_name")) != nil || SafeInt16(row.get("twelfth_year_of_passing")) != nil {
		rec.Twelfth = &StudentModel.TwelfthMarkModel{
			StudentID:       studentID,
			SchoolName:      SafeStr(row.get("twelfth_school_name")),
			YearOfPassing:   SafeInt16(row.get("twelfth_year_of_passing")),
			BoardOfStudy:    SafeStr(row.get("twelfth_board_of_study")),
			English:         SafeInt(row.get("twelfth_english")),
			Physics:         SafeInt(row.get("twelfth_physics")),
			Maths:           SafeInt(row.get("twelfth_maths")),
			Chemistry:       SafeInt(row.get("twelfth_chemistry")),
			Biology:         SafeInt(row.get("twelfth_biology")),
			ComputerScience: SafeInt(row.get("twelfth_computer_science")),
			Tamil:           SafeInt(row.get("twelfth_tamil")),
			TotalMarks:      SafeInt(row.get("twelfth_total_marks")),
		}
	}

	if exam := SafeStr(row.get("entrance_exam_name")); exam != nil {
		rec.EntranceExams = append(rec.EntranceExams, StudentModel.EntranceExamModel{
			StudentID:      studentID,
			ExamName:       exam,
			PhysicsMarks:   SafeInt(row.get("entrance_physics_marks")),
			ChemistryMarks: SafeInt(row.get("entrance_chemistry_marks")),
			MathsMarks:     SafeInt(row.get("entrance_maths_marks")),
			BiologyMarks:   SafeInt(row.get("entrance_biology_marks")),
			TotalMarks:     SafeInt(row.get("entrance_total_marks")),
			CommunityRank:  SafeInt(row.get("entrance_community_rank")),
			OverallRank:    SafeInt(row.get("entrance_overall_rank")),
		})
	}

	if SafeStr(row.get("counselling_forum")) != nil || SafeStr(row.get("counselling_college_alloted")) != nil {
		rec.Counselling = &StudentModel.CounsellingDetailModel{
			StudentID:        studentID,
			Forum:            SafeStr(row.get("counselling_forum")),
			Round:            SafeInt(row.get("counselling_round")),
			CollegeAlloted:   SafeStr(row.get("counselling_college_alloted")),
			YearOfCompletion: SafeInt16(row.get("counselling_year_of_completion")),
		}
	}

	return rec
}

// InsertRecord writes the whole per-student graph on the given handle.
func InsertRecord(tx *gorm.DB, rec Record) error {
	if err := tx.Create(&rec.Student).Error; err != nil {
		return err
	}
	if err := tx.Create(&rec.Parent).Error; err != nil {
		return err
	}
	if rec.Tenth != nil {
		if err := tx.Create(rec.Tenth).Error; err != nil {
			return err
		}
	}
	if rec.Twelfth != nil {
		if err := tx.Create(rec.Twelfth).Error; err != nil {
			return err
		}
	}
	for i := range rec.EntranceExams {
		if err := tx.Create(&rec.EntranceExams[i]).Error; err != nil {
			return err
		}
	}
	if rec.Counselling != nil {
		if err := tx.Create(rec.Counselling).Error; err != nil {
			return err
		}
	}
	return nil
}

// Import persists the rows inside one transaction with a savepoint per row:
// a failing row rolls back only its own writes, and all surviving rows
// commit together at the end. If that final commit fails the whole upload
// fails; per-row durability is not guaranteed until then.
func Import(db *gorm.DB, batchID int, rows []Row) (Outcome, error) {
	out := Outcome{Errors: []RowError{}}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			rec := BuildRecord(row, batchID)

			if err := tx.SavePoint("student_row").Error; err != nil {
				return err
			}
			if err := InsertRecord(tx, rec); err != nil {
				if rbErr := tx.RollbackTo("student_row").Error; rbErr != nil {
					return rbErr
				}
				out.ErrorCount++
				msg := rowErrorMessage(err, rec.Student.StudentID)
				if len(out.Errors) < maxReportedErrors {
					out.Errors = append(out.Errors, RowError{
						Row:       row.Index,
						StudentID: rec.Student.StudentID,
						Error:     msg,
					})
				}
				continue
			}
			out.SuccessCount++
		}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	out.Message = "Upload completed"
	return out, nil
}

// rowErrorMessage keeps duplicate-id failures student-facing and hides raw
// driver text for everything else.
func rowErrorMessage(err error, studentID string) string {
	if helper.IsDuplicate(err) {
		return fmt.Sprintf("Student %s already exists in the database", studentID)
	}
	return fmt.Sprintf("Row could not be saved for student %s", studentID)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
