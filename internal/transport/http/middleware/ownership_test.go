package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gosocial/internal/model"
)

type fakePostStore struct {
	posts map[uint]*model.Post
}

func (f *fakePostStore) GetByID(id uint) (*model.Post, error) {
	return f.posts[id], nil
}

type fakeCommentStore struct {
	comments map[uint]*model.Comment
}

func (f *fakeCommentStore) GetByID(id uint) (*model.Comment, error) {
	return f.comments[id], nil
}

// presetUser stands in for AuthJWT so guard tests control the identity directly.
func presetUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func TestPostOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakePostStore{posts: map[uint]*model.Post{
		10: {ID: 10, Body: "hello", UserID: 1},
	}}

	tests := []struct {
		name       string
		userID     uint
		path       string
		wantStatus int
	}{
		{"non-numeric id", 1, "/posts/abc", http.StatusBadRequest},
		{"zero id", 1, "/posts/0", http.StatusBadRequest},
		{"negative id", 1, "/posts/-3", http.StatusBadRequest},
		{"absent post", 1, "/posts/99", http.StatusNotFound},
		{"not the owner", 2, "/posts/10", http.StatusForbidden},
		{"owner passes", 1, "/posts/10", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.PUT("/posts/:id",
				presetUser(&model.User{ID: tt.userID}),
				PostOwnership(store),
				func(c *gin.Context) {
					post, ok := PostFromContext(c)
					if !ok || post.ID != 10 {
						c.String(http.StatusInternalServerError, "post missing from context")
						return
					}
					c.String(http.StatusOK, "ok")
				},
			)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestCommentOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeCommentStore{comments: map[uint]*model.Comment{
		5: {ID: 5, Content: "nice", PostID: 10, UserID: 1},
	}}

	tests := []struct {
		name       string
		userID     uint
		path       string
		wantStatus int
	}{
		{"non-numeric id", 1, "/posts/10/comments/xyz", http.StatusBadRequest},
		{"absent comment", 1, "/posts/10/comments/44", http.StatusNotFound},
		{"not the owner", 2, "/posts/10/comments/5", http.StatusForbidden},
		{"owner passes", 1, "/posts/10/comments/5", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.PUT("/posts/:id/comments/:commentId",
				presetUser(&model.User{ID: tt.userID}),
				CommentOwnership(store),
				func(c *gin.Context) {
					comment, ok := CommentFromContext(c)
					if !ok || comment.ID != 5 {
						c.String(http.StatusInternalServerError, "comment missing from context")
						return
					}
					c.String(http.StatusOK, "ok")
				},
			)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestSelfOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		userID     uint
		path       string
		wantStatus int
	}{
		{"matching id", 7, "/users/7", http.StatusOK},
		{"other user's id", 7, "/users/8", http.StatusForbidden},
		{"non-numeric id", 7, "/users/me", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.DELETE("/users/:id",
				presetUser(&model.User{ID: tt.userID}),
				SelfOwnership(),
				func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
