package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gosocial/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserProfileStore is the slice of the user repository used for profile
// reads and edits.
type UserProfileStore interface {
	List() ([]model.User, error)
	GetDetail(id uint) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type UserService struct {
	users UserProfileStore
}

type UpdateUserInput struct {
	Name     string
	Username string
	Bio      *string
	Password string
}

// ResourceStamp is the id/date summary attached to a user detail.
type ResourceStamp struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeRef struct {
	PostID uint `json:"post_id"`
}

type UserDetail struct {
	model.SanitizedUser
	Posts     []ResourceStamp `json:"posts"`
	Comments  []ResourceStamp `json:"comments"`
	PostLikes []LikeRef       `json:"post_likes"`
}

func NewUserService(users UserProfileStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]model.SanitizedUser, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	sanitized := make([]model.SanitizedUser, 0, len(users))
	for i := range users {
		sanitized = append(sanitized, users[i].Sanitize())
	}
	return sanitized, nil
}

func (s *UserService) Detail(id uint) (*UserDetail, error) {
	user, err := s.users.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail := &UserDetail{
		SanitizedUser: user.Sanitize(),
		Posts:         make([]ResourceStamp, 0, len(user.Posts)),
		Comments:      make([]ResourceStamp, 0, len(user.Comments)),
		PostLikes:     make([]LikeRef, 0, len(user.PostLikes)),
	}
	for i := range user.Posts {
		detail.Posts = append(detail.Posts, ResourceStamp{ID: user.Posts[i].ID, CreatedAt: user.Posts[i].CreatedAt})
	}
	for i := range user.Comments {
		detail.Comments = append(detail.Comments, ResourceStamp{ID: user.Comments[i].ID, CreatedAt: user.Comments[i].CreatedAt})
	}
	for i := range user.PostLikes {
		detail.PostLikes = append(detail.PostLikes, LikeRef{PostID: user.PostLikes[i].PostID})
	}
	return detail, nil
}

// Update applies only the fields the caller provided. The user argument is
// the already-resolved account; self-ownership was checked upstream.
func (s *UserService) Update(user *model.User, input UpdateUserInput) (*model.SanitizedUser, error) {
	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if username := strings.TrimSpace(input.Username); username != "" && username != user.Username {
		existing, err := s.users.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrUsernameTaken
		}
		user.Username = username
	}
	if password := strings.TrimSpace(input.Password); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}

// Delete removes the account; the database cascades to the user's posts,
// comments and likes.
func (s *UserService) Delete(id uint) error {
	return s.users.Delete(id)
}
