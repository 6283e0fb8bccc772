package model

import "time"

type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Avatar    *string   `gorm:"type:varchar(500)" json:"avatar"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	Role      string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
