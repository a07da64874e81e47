// file: internals/features/academics/batches/model/batch_model.go
package model

import (
	"time"

	"github.com/lib/pq"
)

// subjects maps to TEXT[]; start/end year are SMALLINT in the schema.
type BatchModel struct {
	BatchID   int            `gorm:"column:batch_id;primaryKey;autoIncrement" json:"batch_id"`
	BatchName string         `gorm:"column:batch_name;type:varchar(50);not null" json:"batch_name"`
	StartYear int16          `gorm:"column:start_year;type:smallint;not null" json:"start_year"`
	EndYear   int16          `gorm:"column:end_year;type:smallint;not null" json:"end_year"`
	Type      *string        `gorm:"column:type;type:varchar(50)" json:"type,omitempty"`
	Subjects  pq.StringArray `gorm:"column:subjects;type:text[]" json:"subjects"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BatchModel) TableName() string { return "batch" }
