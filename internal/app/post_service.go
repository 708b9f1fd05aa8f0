package app

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"gosocial/internal/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrAlreadyLiked = errors.New("already liked")
	ErrLikeNotFound = errors.New("like not found")
)

// PostStore is the slice of the post repository the post service consumes.
type PostStore interface {
	Create(post *model.Post) error
	GetDetail(id uint) (*model.Post, error)
	List(offset, limit int) ([]model.Post, int64, error)
	Update(post *model.Post) error
	Delete(id uint) error
}

// LikeStore covers the like rows; uniqueness lives in the database.
type LikeStore interface {
	Create(like *model.PostLike) error
	DeleteByPostAndUser(postID, userID uint) (int64, error)
}

type PostService struct {
	posts PostStore
	likes LikeStore
}

type PostPage struct {
	Posts      []model.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

func NewPostService(posts PostStore, likes LikeStore) *PostService {
	return &PostService{posts: posts, likes: likes}
}

// List returns one page of posts, newest first. Page and limit are clamped
// to at least 1; a page past the end yields an empty list, not an error.
func (s *PostService) List(page, limit int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	posts, total, err := s.posts.List((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PostPage{
		Posts:      posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *PostService) Detail(id uint) (*model.Post, error) {
	post, err := s.posts.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) Create(author *model.User, body string) (*model.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrInvalidInput
	}

	post := &model.Post{
		Body:   body,
		UserID: author.ID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	post.User = author
	return post, nil
}

// Update mutates the already-loaded post; ownership was checked upstream.
func (s *PostService) Update(post *model.Post, body string) (*model.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrInvalidInput
	}

	post.Body = body
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(post *model.Post) error {
	return s.posts.Delete(post.ID)
}

func (s *PostService) Like(postID, userID uint) (*model.PostLike, error) {
	like := &model.PostLike{PostID: postID, UserID: userID}
	if err := s.likes.Create(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}
	return like, nil
}

func (s *PostService) Unlike(postID, userID uint) error {
	deleted, err := s.likes.DeleteByPostAndUser(postID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrLikeNotFound
	}
	return nil
}
