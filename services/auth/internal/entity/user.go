package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg"

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Bio       *string   `json:"bio"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// ProfileUpdate carries the editable fields; nil leaves the stored value as is.
type ProfileUpdate struct {
	Name   *string
	Bio    *string
	Avatar *string
}

// AvatarURL is the generated avatar seeded by email. The email goes in unescaped
// so stored URLs match the ones already issued.
func AvatarURL(email string) string {
	return avatarBaseURL + "?seed=" + email
}
