package model

import (
	"time"

	"github.com/lib/pq"
)

type WorkModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(50);not null;index" json:"category"`
	ImageURL    string         `gorm:"type:varchar(1000);not null" json:"image_url"`
	License     string         `gorm:"type:varchar(50);not null" json:"license"`
	Tags        pq.StringArray `gorm:"type:text[];not null" json:"tags"`
	AuthorID    int64          `gorm:"not null;index" json:"author_id"`
	Status      string         `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Likes       int            `gorm:"default:0" json:"likes"`
	Downloads   int            `gorm:"default:0" json:"downloads"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (WorkModel) TableName() string {
	return "works"
}

// WorkWithAuthor is a listing row joined to its author.
type WorkWithAuthor struct {
	WorkModel    `gorm:"embedded"`
	AuthorName   string  `gorm:"column:author_name"`
	AuthorAvatar *string `gorm:"column:author_avatar"`
}
