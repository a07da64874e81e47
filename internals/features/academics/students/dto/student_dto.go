// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"gurukul_backend/internals/features/academics/students/importer"
	"gurukul_backend/internals/features/academics/students/model"
)

type EntranceExamInput struct {
	ExamName       string `json:"exam_name" validate:"required,max=100"`
	PhysicsMarks   *int   `json:"physics_marks"`
	ChemistryMarks *int   `json:"chemistry_marks"`
	MathsMarks     *int   `json:"maths_marks"`
	BiologyMarks   *int   `json:"biology_marks"`
	TotalMarks     *int   `json:"total_marks"`
	CommunityRank  *int   `json:"community_rank"`
	OverallRank    *int   `json:"overall_rank"`
}

// StudentCreateRequest is the full flat create payload: profile plus the
// optional parent, prior-marks, entrance-exam and counselling sections.
type StudentCreateRequest struct {
	StudentID      string  `json:"student_id" validate:"required,max=50"`
	BatchID        int     `json:"batch_id" validate:"required"`
	StudentName    string  `json:"student_name" validate:"required,max=100"`
	DOB            *string `json:"dob"`
	Grade          *string `json:"grade"`
	Community      *string `json:"community"`
	EnrollmentYear *int16  `json:"enrollment_year"`
	Course         *string `json:"course"`
	Branch         *string `json:"branch"`
	Gender         *string `json:"gender"`
	StudentMobile  *string `json:"student_mobile"`
	AadharNo       *string `json:"aadhar_no"`
	ApaarID        *string `json:"apaar_id"`
	Email          *string `json:"email" validate:"omitempty,email"`
	PhotoURL       *string `json:"photo_url"`
	SchoolName     *string `json:"school_name"`

	GuardianName       *string `json:"guardian_name"`
	GuardianOccupation *string `json:"guardian_occupation"`
	GuardianMobile     *string `json:"guardian_mobile"`
	GuardianEmail      *string `json:"guardian_email"`
	FatherName         *string `json:"father_name"`
	FatherOccupation   *string `json:"father_occupation"`
	FatherMobile       *string `json:"father_mobile"`
	FatherEmail        *string `json:"father_email"`
	MotherName         *string `json:"mother_name"`
	MotherOccupation   *string `json:"mother_occupation"`
	MotherMobile       *string `json:"mother_mobile"`
	MotherEmail        *string `json:"mother_email"`
	SiblingName        *string `json:"sibling_name"`
	SiblingGrade       *string `json:"sibling_grade"`
	SiblingSchool      *string `json:"sibling_school"`
	SiblingCollege     *string `json:"sibling_college"`

	TenthSchoolName    *string `json:"tenth_school_name"`
	TenthYearOfPassing *int16  `json:"tenth_year_of_passing"`
	TenthBoardOfStudy  *string `json:"tenth_board_of_study"`
	TenthEnglish       *int    `json:"tenth_english"`
	TenthTamil         *int    `json:"tenth_tamil"`
	TenthHindi         *int    `json:"tenth_hindi"`
	TenthMaths         *int    `json:"tenth_maths"`
	TenthScience       *int    `json:"tenth_science"`
	TenthSocialScience *int    `json:"tenth_social_science"`
	TenthTotalMarks    *int    `json:"tenth_total_marks"`

	TwelfthSchoolName      *string `json:"twelfth_school_name"`
	TwelfthYearOfPassing   *int16  `json:"twelfth_year_of_passing"`
	TwelfthBoardOfStudy    *string `json:"twelfth_board_of_study"`
	TwelfthEnglish         *int    `json:"twelfth_english"`
	TwelfthTamil           *int    `json:"twelfth_tamil"`
	TwelfthPhysics         *int    `json:"twelfth_physics"`
	TwelfthChemistry       *int    `json:"twelfth_chemistry"`
	TwelfthMaths           *int    `json:"twelfth_maths"`
	TwelfthBiology         *int    `json:"twelfth_biology"`
	TwelfthComputerScience *int    `json:"twelfth_computer_science"`
	TwelfthTotalMarks      *int    `json:"twelfth_total_marks"`

	EntranceExams []EntranceExamInput `json:"entrance_exams" validate:"dive"`

	CounsellingForum            *string `json:"counselling_forum"`
	CounsellingRound            *int    `json:"counselling_round"`
	CounsellingCollegeAlloted   *string `json:"counselling_college_alloted"`
	CounsellingYearOfCompletion *int16  `json:"counselling_year_of_completion"`
}

func (r *StudentCreateRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.StudentName = strings.TrimSpace(r.StudentName)
}

// ToRecord maps the payload onto the same write set the bulk importer uses,
// so single create and upload share one persistence path.
func (r *StudentCreateRequest) ToRecord() importer.Record {
	rec := importer.Record{
		Student: model.StudentModel{
			StudentID:      r.StudentID,
			BatchID:        &r.BatchID,
			StudentName:    r.StudentName,
			DOB:            parseDate(r.DOB),
			Grade:          r.Grade,
			Community:      r.Community,
			EnrollmentYear: r.EnrollmentYear,
			Course:         r.Course,
			Branch:         r.Branch,
			Gender:         r.Gender,
			StudentMobile:  r.StudentMobile,
			AadharNo:       r.AadharNo,
			ApaarID:        r.ApaarID,
			Email:          r.Email,
			PhotoURL:       r.PhotoURL,
			SchoolName:     r.SchoolName,
		},
		Parent: model.ParentInfoModel{
			StudentID:          r.StudentID,
			GuardianName:       r.GuardianName,
			GuardianOccupation: r.GuardianOccupation,
			GuardianMobile:     r.GuardianMobile,
			GuardianEmail:      r.GuardianEmail,
			FatherName:         r.FatherName,
			FatherOccupation:   r.FatherOccupation,
			FatherMobile:       r.FatherMobile,
			FatherEmail:        r.FatherEmail,
			MotherName:         r.MotherName,
			MotherOccupation:   r.MotherOccupation,
			MotherMobile:       r.MotherMobile,
			MotherEmail:        r.MotherEmail,
			SiblingName:        r.SiblingName,
			SiblingGrade:       r.SiblingGrade,
			SiblingSchool:      r.SiblingSchool,
			SiblingCollege:     r.SiblingCollege,
		},
	}

	if r.TenthSchoolName != nil || r.TenthYearOfPassing != nil {
		rec.Tenth = &model.TenthMarkModel{
			StudentID:     r.StudentID,
			SchoolName:    r.TenthSchoolName,
			YearOfPassing: r.TenthYearOfPassing,
			BoardOfStudy:  r.TenthBoardOfStudy,
			English:       r.TenthEnglish,
			Tamil:         r.TenthTamil,
			Hindi:         r.TenthHindi,
			Maths:         r.TenthMaths,
			Science:       r.TenthScience,
			SocialScience: r.TenthSocialScience,
			TotalMarks:    r.TenthTotalMarks,
		}
	}

	if r.TwelfthSchoolName != nil || r.TwelfthYearOfPassing != nil {
		rec.Twelfth = &model.TwelfthMarkModel{
			StudentID:       r.StudentID,
			SchoolName:      r.TwelfthSchoolName,
			YearOfPassing:   r.TwelfthYearOfPassing,
			BoardOfStudy:    r.TwelfthBoardOfStudy,
			English:         r.TwelfthEnglish,
			Physics:         r.TwelfthPhysics,
			Maths:           r.TwelfthMaths,
			Chemistry:       r.TwelfthChemistry,
			Biology:         r.TwelfthBiology,
			ComputerScience: r.TwelfthComputerScience,
			Tamil:           r.TwelfthTamil,
			TotalMarks:      r.TwelfthTotalMarks,
		}
	}

	for _, e := range r.EntranceExams {
		name := e.ExamName
		rec.EntranceExams = append(rec.EntranceExams, model.EntranceExamModel{
			StudentID:      r.StudentID,
			ExamName:       &name,
			PhysicsMarks:   e.PhysicsMarks,
			ChemistryMarks: e.ChemistryMarks,
			MathsMarks:     e.MathsMarks,
			BiologyMarks:   e.BiologyMarks,
			TotalMarks:     e.TotalMarks,
			CommunityRank:  e.CommunityRank,
			OverallRank:    e.OverallRank,
		})
	}

	if r.CounsellingForum != nil || r.CounsellingCollegeAlloted != nil {
		rec.Counselling = &model.CounsellingDetailModel{
			StudentID:        r.StudentID,
			Forum:            r.CounsellingForum,
			Round:            r.CounsellingRound,
			CollegeAlloted:   r.CounsellingCollegeAlloted,
			YearOfCompletion: r.CounsellingYearOfCompletion,
		}
	}

	return rec
}

// StudentUpdateRequest carries the same sections with every field optional.
type StudentUpdateRequest struct {
	StudentName    *string `json:"student_name"`
	DOB            *string `json:"dob"`
	Grade          *string `json:"grade"`
	Community      *string `json:"community"`
	EnrollmentYear *int16  `json:"enrollment_year"`
	Course         *string `json:"course"`
	Branch         *string `json:"branch"`
	Gender         *string `json:"gender"`
	StudentMobile  *string `json:"student_mobile"`
	AadharNo       *string `json:"aadhar_no"`
	ApaarID        *string `json:"apaar_id"`
	Email          *string `json:"email" validate:"omitempty,email"`
	SchoolName     *string `json:"school_name"`

	GuardianName       *string `json:"guardian_name"`
	GuardianOccupation *string `json:"guardian_occupation"`
	GuardianMobile     *string `json:"guardian_mobile"`
	GuardianEmail      *string `json:"guardian_email"`
	FatherName         *string `json:"father_name"`
	FatherOccupation   *string `json:"father_occupation"`
	FatherMobile       *string `json:"father_mobile"`
	FatherEmail        *string `json:"father_email"`
	MotherName         *string `json:"mother_name"`
	MotherOccupation   *string `json:"mother_occupation"`
	MotherMobile       *string `json:"mother_mobile"`
	MotherEmail        *string `json:"mother_email"`
	SiblingName        *string `json:"sibling_name"`
	SiblingGrade       *string `json:"sibling_grade"`
	SiblingSchool      *string `json:"sibling_school"`
	SiblingCollege     *string `json:"sibling_college"`

	TenthSchoolName    *string `json:"tenth_school_name"`
	TenthYearOfPassing *int16  `json:"tenth_year_of_passing"`
	TenthBoardOfStudy  *string `json:"tenth_board_of_study"`
	TenthEnglish       *int    `json:"tenth_english"`
	TenthTamil         *int    `json:"tenth_tamil"`
	TenthHindi         *int    `json:"tenth_hindi"`
	TenthMaths         *int    `json:"tenth_maths"`
	TenthScience       *int    `json:"tenth_science"`
	TenthSocialScience *int    `json:"tenth_social_science"`
	TenthTotalMarks    *int    `json:"tenth_total_marks"`

	TwelfthSchoolName      *string `json:"twelfth_school_name"`
	TwelfthYearOfPassing   *int16  `json:"twelfth_year_of_passing"`
	TwelfthBoardOfStudy    *string `json:"twelfth_board_of_study"`
	TwelfthEnglish         *int    `json:"twelfth_english"`
	TwelfthTamil           *int    `json:"twelfth_tamil"`
	TwelfthPhysics         *int    `json:"twelfth_physics"`
	TwelfthChemistry       *int    `json:"twelfth_chemistry"`
	TwelfthMaths           *int    `json:"twelfth_maths"`
	TwelfthBiology         *int    `json:"twelfth_biology"`
	TwelfthComputerScience *int    `json:"twelfth_computer_science"`
	TwelfthTotalMarks      *int    `json:"twelfth_total_marks"`

	CounsellingForum            *string `json:"counselling_forum"`
	CounsellingRound            *int    `json:"counselling_round"`
	CounsellingCollegeAlloted   *string `json:"counselling_college_alloted"`
	CounsellingYearOfCompletion *int16  `json:"counselling_year_of_completion"`
}

// StudentUpdates returns only the provided student columns.
func (r *StudentUpdateRequest) StudentUpdates() map[string]any {
	u := map[string]any{}
	putStr(u, "student_name", r.StudentName)
	if d := parseDate(r.DOB); d != nil {
		u["dob"] = d
	}
	putStr(u, "grade", r.Grade)
	putStr(u, "community", r.Community)
	if r.EnrollmentYear != nil {
		u["enrollment_year"] = *r.EnrollmentYear
	}
	putStr(u, "course", r.Course)
	putStr(u, "branch", r.Branch)
	putStr(u, "gender", r.Gender)
	putStr(u, "student_mobile", r.StudentMobile)
	putStr(u, "aadhar_no", r.AadharNo)
	putStr(u, "apaar_id", r.ApaarID)
	putStr(u, "email", r.Email)
	putStr(u, "school_name", r.SchoolName)
	return u
}

func (r *StudentUpdateRequest) ParentUpdates() map[string]any {
	u := map[string]any{}
	putStr(u, "guardian_name", r.GuardianName)
	putStr(u, "guardian_occupation", r.GuardianOccupation)
	putStr(u, "guardian_mobile", r.GuardianMobile)
	putStr(u, "guardian_email", r.GuardianEmail)
	putStr(u, "father_name", r.FatherName)
	putStr(u, "father_occupation", r.FatherOccupation)
	putStr(u, "father_mobile", r.FatherMobile)
	putStr(u, "father_email", r.FatherEmail)
	putStr(u, "mother_name", r.MotherName)
	putStr(u, "mother_occupation", r.MotherOccupation)
	putStr(u, "mother_mobile", r.MotherMobile)
	putStr(u, "mother_email", r.MotherEmail)
	putStr(u, "sibling_name", r.SiblingName)
	putStr(u, "sibling_grade", r.SiblingGrade)
	putStr(u, "sibling_school", r.SiblingSchool)
	putStr(u, "sibling_college", r.SiblingCollege)
	return u
}

func (r *StudentUpdateRequest) TenthUpdates() map[string]any {
	u := map[string]any{}
	putStr(u, "school_name", r.TenthSchoolName)
	if r.TenthYearOfPassing != nil {
		u["year_of_passing"] = *r.TenthYearOfPassing
	}
	putStr(u, "board_of_study", r.TenthBoardOfStudy)
	putInt(u, "english", r.TenthEnglish)
	putInt(u, "tamil", r.TenthTamil)
	putInt(u, "hindi", r.TenthHindi)
	putInt(u, "maths", r.TenthMaths)
	putInt(u, "science", r.TenthScience)
	putInt(u, "social_science", r.TenthSocialScience)
	putInt(u, "total_marks", r.TenthTotalMarks)
	return u
}

func (r *StudentUpdateRequest) TwelfthUpdates() map[string]any {
	u := map[string]any{}
	putStr(u, "school_name", r.TwelfthSchoolName)
	if r.TwelfthYearOfPassing != nil {
		u["year_of_passing"] = *r.TwelfthYearOfPassing
	}
	putStr(u, "board_of_study", r.TwelfthBoardOfStudy)
	putInt(u, "english", r.TwelfthEnglish)
	putInt(u, "tamil", r.TwelfthTamil)
	putInt(u, "physics", r.TwelfthPhysics)
	putInt(u, "chemistry", r.TwelfthChemistry)
	putInt(u, "maths", r.TwelfthMaths)
	putInt(u, "biology", r.TwelfthBiology)
	putInt(u, "computer_science", r.TwelfthComputerScience)
	putInt(u, "total_marks", r.TwelfthTotalMarks)
	return u
}

func (r *StudentUpdateRequest) CounsellingUpdates() map[string]any {
	u := map[string]any{}
	putStr(u, "forum", r.CounsellingForum)
	putInt(u, "round", r.CounsellingRound)
	putStr(u, "college_alloted", r.CounsellingCollegeAlloted)
	if r.CounsellingYearOfCompletion != nil {
		u["year_of_completion"] = *r.CounsellingYearOfCompletion
	}
	return u
}

type StudentSummary struct {
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"student_name"`
	Gender         *string `json:"gender"`
	DOB            *string `json:"dob"`
	Community      *string `json:"community"`
	Grade          *string `json:"grade"`
	EnrollmentYear *int16  `json:"enrollment_year"`
	Course         *string `json:"course"`
	Branch         *string `json:"branch"`
	StudentMobile  *string `json:"student_mobile"`
	Email          *string `json:"email"`
	CreatedAt      string  `json:"created_at"`
}

func ToStudentSummary(s model.StudentModel) StudentSummary {
	return StudentSummary{
		StudentID:      s.StudentID,
		StudentName:    s.StudentName,
		Gender:         s.Gender,
		DOB:            FormatDate(s.DOB),
		Community:      s.Community,
		Grade:          s.Grade,
		EnrollmentYear: s.EnrollmentYear,
		Course:         s.Course,
		Branch:         s.Branch,
		StudentMobile:  s.StudentMobile,
		Email:          s.Email,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

// FormatDate renders a stored date column as yyyy-mm-dd.
func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

func parseDate(s *string) *datatypes.Date {
	if s == nil {
		return nil
	}
	return importer.ParseDate(*s)
}

func putStr(u map[string]any, col string, v *string) {
	if v != nil {
		u[col] = *v
	}
}

func putInt(u map[string]any, col string, v *int) {
	if v != nil {
		u[col] = *v
	}
}
