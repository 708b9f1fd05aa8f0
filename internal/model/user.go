package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Bio          *string   `gorm:"size:512" json:"bio"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Posts     []Post     `gorm:"constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Comments  []Comment  `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	PostLikes []PostLike `gorm:"constraint:OnDelete:CASCADE" json:"post_likes,omitempty"`
}

// UserSummary is the author shape embedded in posts, comments and likes.
type UserSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// SanitizedUser is the public profile shape. It never carries the password hash.
type SanitizedUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Bio       *string   `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
