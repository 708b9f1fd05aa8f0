package app

import (
	"errors"
	"testing"

	"gosocial/internal/model"
)

type fakeCommentStore struct {
	comments map[uint]*model.Comment
	nextID   uint
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[uint]*model.Comment{}, nextID: 1}
}

func (f *fakeCommentStore) Create(comment *model.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentStore) Update(comment *model.Comment) error {
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentStore) Delete(id uint) error {
	delete(f.comments, id)
	return nil
}

type fakePostLookup struct {
	posts map[uint]*model.Post
}

func (f *fakePostLookup) GetByID(id uint) (*model.Post, error) {
	return f.posts[id], nil
}

func TestCreateComment(t *testing.T) {
	comments := newFakeCommentStore()
	posts := &fakePostLookup{posts: map[uint]*model.Post{10: {ID: 10, UserID: 2}}}
	svc := NewCommentService(comments, posts)
	author := &model.User{ID: 1, Username: "alice"}

	if _, err := svc.Create(10, author, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank content err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(99, author, "hi"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post err = %v, want ErrPostNotFound", err)
	}

	comment, err := svc.Create(10, author, "  first!  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comment.Content != "first!" {
		t.Errorf("content = %q, want trimmed", comment.Content)
	}
	if comment.PostID != 10 || comment.UserID != 1 {
		t.Errorf("comment attached to post %d / user %d, want 10 / 1", comment.PostID, comment.UserID)
	}
}

func TestUpdateAndDeleteComment(t *testing.T) {
	comments := newFakeCommentStore()
	posts := &fakePostLookup{posts: map[uint]*model.Post{10: {ID: 10}}}
	svc := NewCommentService(comments, posts)
	author := &model.User{ID: 1}

	comment, err := svc.Create(10, author, "original")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(comment, " "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank update err = %v, want ErrInvalidInput", err)
	}
	updated, err := svc.Update(comment, "edited")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Content != "edited" || comments.comments[comment.ID].Content != "edited" {
		t.Error("update did not persist")
	}

	if err := svc.Delete(comment); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, exists := comments.comments[comment.ID]; exists {
		t.Error("comment still present after delete")
	}
}
