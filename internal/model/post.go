package model

import "time"

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User      *User      `json:"user,omitempty"`
	Comments  []Comment  `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	PostLikes []PostLike `gorm:"constraint:OnDelete:CASCADE" json:"post_likes,omitempty"`

	// Read-only aggregates filled by subselects on list/detail queries.
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
	LikeCount    int64 `gorm:"->;-:migration" json:"like_count"`
}
