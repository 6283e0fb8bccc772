package entity

import "time"

type WorkStatus string

const (
	StatusPending  WorkStatus = "pending"
	StatusApproved WorkStatus = "approved"
)

const RoleAdmin = "admin"

type Work struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"image_url"`
	License      string     `json:"license"`
	Tags         []string   `json:"tags"`
	AuthorID     int64      `json:"author_id"`
	Status       WorkStatus `json:"status"`
	Likes        int        `json:"likes"`
	Downloads    int        `json:"downloads"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	AuthorName   string     `json:"author_name,omitempty"`
	AuthorAvatar string     `json:"author_avatar,omitempty"`
}

// ListFilter narrows a listing. Empty strings and a nil AuthorID are not applied.
type ListFilter struct {
	Status   string
	Category string
	AuthorID *int64
}

// NewWork is a submission as received from the author.
type NewWork struct {
	Title       string
	Description *string
	Category    string
	License     string
	Tags        []string
	AuthorID    int64
	AuthorRole  string
	ImageBase64 string
}
