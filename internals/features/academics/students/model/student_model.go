// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type StudentModel struct {
	StudentID      string          `gorm:"column:student_id;type:varchar(50);primaryKey" json:"student_id"`
	BatchID        *int            `gorm:"column:batch_id;index" json:"batch_id,omitempty"`
	StudentName    string          `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	DOB            *datatypes.Date `gorm:"column:dob;type:date" json:"-"`
	Grade          *string         `gorm:"column:grade;type:varchar(20)" json:"grade,omitempty"`
	Community      *string         `gorm:"column:community;type:varchar(50)" json:"community,omitempty"`
	EnrollmentYear *int16          `gorm:"column:enrollment_year;type:smallint" json:"enrollment_year,omitempty"`
	Course         *string         `gorm:"column:course;type:varchar(100)" json:"course,omitempty"`
	Branch         *string         `gorm:"column:branch;type:varchar(100)" json:"branch,omitempty"`
	Gender         *string         `gorm:"column:gender;type:varchar(10)" json:"gender,omitempty"`
	StudentMobile  *string         `gorm:"column:student_mobile;type:varchar(15)" json:"student_mobile,omitempty"`
	AadharNo       *string         `gorm:"column:aadhar_no;type:varchar(20)" json:"aadhar_no,omitempty"`
	ApaarID        *string         `gorm:"column:apaar_id;type:varchar(20)" json:"apaar_id,omitempty"`
	Email          *string         `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	PhotoURL       *string         `gorm:"column:photo_url;type:varchar(255)" json:"photo_url,omitempty"`
	SchoolName     *string         `gorm:"column:school_name;type:varchar(255)" json:"school_name,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StudentModel) TableName() string { return "student" }

type ParentInfoModel struct {
	StudentID          string    `gorm:"column:student_id;type:varchar(50);primaryKey" json:"student_id"`
	GuardianName       *string   `gorm:"column:guardian_name;type:varchar(100)" json:"guardian_name,omitempty"`
	FatherName         *string   `gorm:"column:father_name;type:varchar(100)" json:"father_name,omitempty"`
	MotherName         *string   `gorm:"column:mother_name;type:varchar(100)" json:"mother_name,omitempty"`
	SiblingName        *string   `gorm:"column:sibling_name;type:varchar(100)" json:"sibling_name,omitempty"`
	GuardianOccupation *string   `gorm:"column:guardian_occupation;type:varchar(100)" json:"guardian_occupation,omitempty"`
	FatherOccupation   *string   `gorm:"column:father_occupation;type:varchar(100)" json:"father_occupation,omitempty"`
	MotherOccupation   *string   `gorm:"column:mother_occupation;type:varchar(100)" json:"mother_occupation,omitempty"`
	SiblingGrade       *string   `gorm:"column:sibling_grade;type:varchar(20)" json:"sibling_grade,omitempty"`
	GuardianMobile     *string   `gorm:"column:guardian_mobile;type:varchar(15)" json:"guardian_mobile,omitempty"`
	MotherMobile       *string   `gorm:"column:mother_mobile;type:varchar(15)" json:"mother_mobile,omitempty"`
	FatherMobile       *string   `gorm:"column:father_mobile;type:varchar(15)" json:"father_mobile,omitempty"`
	SiblingSchool      *string   `gorm:"column:sibling_school;type:varchar(255)" json:"sibling_school,omitempty"`
	SiblingCollege     *string   `gorm:"column:sibling_college;type:varchar(255)" json:"sibling_college,omitempty"`
	GuardianEmail      *string   `gorm:"column:guardian_email;type:varchar(255)" json:"guardian_email,omitempty"`
	MotherEmail        *string   `gorm:"column:mother_email;type:varchar(255)" json:"mother_email,omitempty"`
	FatherEmail        *string   `gorm:"column:father_email;type:varchar(255)" json:"father_email,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ParentInfoModel) TableName() string { return "parent_info" }
