package model

// AuthorModel is the read-only slice of the users table the works service needs.
type AuthorModel struct {
	ID     int64   `gorm:"primaryKey"`
	Name   string  `gorm:"type:varchar(255)"`
	Avatar *string `gorm:"type:varchar(500)"`
	Role   string  `gorm:"type:varchar(20)"`
}

func (AuthorModel) TableName() string {
	return "users"
}
