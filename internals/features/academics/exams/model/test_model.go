// file: internals/features/academics/exams/model/test_model.go
package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Mark columns are varchar(20): numeric strings plus the tagged
// sentinel tokens ("A" absent, "-"/"" not applicable). All arithmetic
// on them goes through the marks package, never SQL.
type DailyTestModel struct {
	TestID     int             `gorm:"column:test_id;primaryKey;autoIncrement" json:"test_id"`
	StudentID  string          `gorm:"column:student_id;type:varchar(50);index" json:"student_id"`
	Grade      *int            `gorm:"column:grade" json:"grade,omitempty"`
	Branch     *string         `gorm:"column:branch;type:varchar(100)" json:"branch,omitempty"`
	TestDate   *datatypes.Date `gorm:"column:test_date;type:date" json:"-"`
	Subject    *string         `gorm:"column:subject;type:varchar(100)" json:"subject,omitempty"`
	UnitName   *string         `gorm:"column:unit_name;type:varchar(100)" json:"unit_name,omitempty"`
	TotalMarks string          `gorm:"column:total_marks;type:varchar(20)" json:"total_marks"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DailyTestModel) TableName() string { return "daily_test" }

type MockTestModel struct {
	TestID             int             `gorm:"column:test_id;primaryKey;autoIncrement" json:"test_id"`
	StudentID          string          `gorm:"column:student_id;type:varchar(50);index" json:"student_id"`
	Grade              *int            `gorm:"column:grade" json:"grade,omitempty"`
	Branch             *string         `gorm:"column:branch;type:varchar(100)" json:"branch,omitempty"`
	TestDate           *datatypes.Date `gorm:"column:test_date;type:date" json:"-"`
	MathsMarks         string          `gorm:"column:maths_marks;type:varchar(20)" json:"maths_marks"`
	PhysicsMarks       string          `gorm:"column:physics_marks;type:varchar(20)" json:"physics_marks"`
	BiologyMarks       string          `gorm:"column:biology_marks;type:varchar(20)" json:"biology_marks"`
	ChemistryMarks     string          `gorm:"column:chemistry_marks;type:varchar(20)" json:"chemistry_marks"`
	MathsUnitNames     pq.StringArray  `gorm:"column:maths_unit_names;type:text[]" json:"maths_unit_names"`
	ChemistryUnitNames pq.StringArray  `gorm:"column:chemistry_unit_names;type:text[]" json:"chemistry_unit_names"`
	BiologyUnitNames   pq.StringArray  `gorm:"column:biology_unit_names;type:text[]" json:"biology_unit_names"`
	PhysicsUnitNames   pq.StringArray  `gorm:"column:physics_unit_names;type:text[]" json:"physics_unit_names"`
	TotalMarks         string          `gorm:"column:total_marks;type:varchar(20)" json:"total_marks"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MockTestModel) TableName() string { return "mock_test" }
