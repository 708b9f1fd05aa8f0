package app

import (
	"strings"

	"gosocial/internal/model"
)

// PostLookup is the existence check a comment creation needs.
type PostLookup interface {
	GetByID(id uint) (*model.Post, error)
}

type CommentStore interface {
	Create(comment *model.Comment) error
	Update(comment *model.Comment) error
	Delete(id uint) error
}

type CommentService struct {
	comments CommentStore
	posts    PostLookup
}

func NewCommentService(comments CommentStore, posts PostLookup) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

func (s *CommentService) Create(postID uint, author *model.User, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		Content: content,
		PostID:  postID,
		UserID:  author.ID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	comment.User = author
	return comment, nil
}

// Update mutates the already-loaded comment; ownership was checked upstream.
func (s *CommentService) Update(comment *model.Comment, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	comment.Content = content
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(comment *model.Comment) error {
	return s.comments.Delete(comment.ID)
}
