package model

import "time"

// PostLike records that a user liked a post. The composite unique index is
// what enforces the at-most-one-like-per-(post,user) invariant; the
// application relies on the duplicate-key error rather than checking first.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty"`
}
