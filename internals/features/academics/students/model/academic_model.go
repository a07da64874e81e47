// file: internals/features/academics/students/model/academic_model.go
package model

import "time"

// Prior-schooling marks keep INT columns; only test marks moved to the
// tagged varchar representation.
type TenthMarkModel struct {
	StudentID     string    `gorm:"column:student_id;type:varchar(50);primaryKey" json:"student_id"`
	SchoolName    *string   `gorm:"column:school_name;type:varchar(255)" json:"school_name,omitempty"`
	YearOfPassing *int16    `gorm:"column:year_of_passing;type:smallint" json:"year_of_passing,omitempty"`
	BoardOfStudy  *string   `gorm:"column:board_of_study;type:varchar(50)" json:"board_of_study,omitempty"`
	English       *int      `gorm:"column:english" json:"english,omitempty"`
	Tamil         *int      `gorm:"column:tamil" json:"tamil,omitempty"`
	Hindi         *int      `gorm:"column:hindi" json:"hindi,omitempty"`
	Maths         *int      `gorm:"column:maths" json:"maths,omitempty"`
	Science       *int      `gorm:"column:science" json:"science,omitempty"`
	SocialScience *int      `gorm:"column:social_science" json:"social_science,omitempty"`
	TotalMarks    *int      `gorm:"column:total_marks" json:"total_marks,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TenthMarkModel) TableName() string { return "tenth_mark" }

type TwelfthMarkModel struct {
	StudentID       string    `gorm:"column:student_id;type:varchar(50);primaryKey" json:"student_id"`
	SchoolName      *string   `gorm:"column:school_name;type:varchar(255)" json:"school_name,omitempty"`
	YearOfPassing   *int16    `gorm:"column:year_of_passing;type:smallint" json:"year_of_passing,omitempty"`
	BoardOfStudy    *string   `gorm:"column:board_of_study;type:varchar(50)" json:"board_of_study,omitempty"`
	English         *int      `gorm:"column:english" json:"english,omitempty"`
	Physics         *int      `gorm:"column:physics" json:"physics,omitempty"`
	Maths           *int      `gorm:"column:maths" json:"maths,omitempty"`
	Chemistry       *int      `gorm:"column:chemistry" json:"chemistry,omitempty"`
	Biology         *int      `gorm:"column:biology" json:"biology,omitempty"`
	ComputerScience *int      `gorm:"column:computer_science" json:"computer_science,omitempty"`
	Tamil           *int      `gorm:"column:tamil" json:"tamil,omitempty"`
	TotalMarks      *int      `gorm:"column:total_marks" json:"total_marks,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TwelfthMarkModel) TableName() string { return "twelfth_mark" }

type EntranceExamModel struct {
	ExamID         int       `gorm:"column:exam_id;primaryKey;autoIncrement" json:"exam_id"`
	StudentID      string    `gorm:"column:student_id;type:varchar(50);index;uniqueIndex:uq_entrance_exam_per_student" json:"student_id"`
	ExamName       *string   `gorm:"column:exam_name;type:varchar(100);uniqueIndex:uq_entrance_exam_per_student" json:"exam_name,omitempty"`
	PhysicsMarks   *int      `gorm:"column:physics_marks" json:"physics_marks,omitempty"`
	ChemistryMarks *int      `gorm:"column:chemistry_marks" json:"chemistry_marks,omitempty"`
	MathsMarks     *int      `gorm:"column:maths_marks" json:"maths_marks,omitempty"`
	BiologyMarks   *int      `gorm:"column:biology_marks" json:"biology_marks,omitempty"`
	TotalMarks     *int      `gorm:"column:total_marks" json:"total_marks,omitempty"`
	CommunityRank  *int      `gorm:"column:community_rank" json:"community_rank,omitempty"`
	OverallRank    *int      `gorm:"column:overall_rank" json:"overall_rank,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EntranceExamModel) TableName() string { return "entrance_exams" }

type CounsellingDetailModel struct {
	CounsellingID    int       `gorm:"column:counselling_id;primaryKey;autoIncrement" json:"counselling_id"`
	StudentID        string    `gorm:"column:student_id;type:varchar(50);index" json:"student_id"`
	Forum            *string   `gorm:"column:forum;type:varchar(100)" json:"forum,omitempty"`
	Round            *int      `gorm:"column:round" json:"round,omitempty"`
	CollegeAlloted   *string   `gorm:"column:college_alloted;type:varchar(255)" json:"college_alloted,omitempty"`
	YearOfCompletion *int16    `gorm:"column:year_of_completion;type:smallint" json:"year_of_completion,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CounsellingDetailModel) TableName() string { return "counselling_detail" }
