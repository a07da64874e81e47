// file: internals/features/users/auth/model/user_model.go
package model

import "time"

type UserModel struct {
	ID        string    `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"column:role;type:varchar(50)" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string { return "users" }
