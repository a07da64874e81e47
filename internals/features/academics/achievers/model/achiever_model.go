// file: internals/features/academics/achievers/model/achiever_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type AchieverModel struct {
	AchievementID      int             `gorm:"column:achievement_id;primaryKey;autoIncrement" json:"achievement_id"`
	StudentID          string          `gorm:"column:student_id;type:varchar(50);index" json:"student_id"`
	BatchID            *int            `gorm:"column:batch_id" json:"batch_id,omitempty"`
	Achievement        string          `gorm:"column:achievement;type:varchar(255);not null" json:"achievement"`
	AchievementDetails *string         `gorm:"column:achievement_details;type:text" json:"achievement_details,omitempty"`
	Rank               *string         `gorm:"column:rank;type:varchar(50)" json:"rank,omitempty"`
	Score              *float64        `gorm:"column:score;type:decimal(5,2)" json:"score,omitempty"`
	PhotoURL           *string         `gorm:"column:photo_url;type:varchar(255)" json:"photo_url,omitempty"`
	AchievedDate       *datatypes.Date `gorm:"column:achieved_date;type:date" json:"-"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AchieverModel) TableName() string { return "achievers" }
