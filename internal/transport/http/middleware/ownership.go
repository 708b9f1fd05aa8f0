package middleware

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gosocial/internal/model"
	"gosocial/internal/transport/http/response"
)

const (
	ContextPostKey    = "post"
	ContextCommentKey = "comment"
)

type PostStore interface {
	GetByID(id uint) (*model.Post, error)
}

type CommentStore interface {
	GetByID(id uint) (*model.Comment, error)
}

// PostOwnership runs after AuthJWT. The order is deliberate: malformed id
// before any lookup, existence before ownership. A non-owner of an existing
// post gets 403, not 404 — callers rely on the distinction.
func PostOwnership(posts PostStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parsePositiveID(c.Param("id"))
		if !ok {
			response.Error(c, http.StatusBadRequest, "Invalid post ID")
			c.Abort()
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Token required")
			c.Abort()
			return
		}

		post, err := posts.GetByID(postID)
		if err != nil {
			log.Printf("load post for ownership check failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
			c.Abort()
			return
		}
		if post == nil {
			response.Error(c, http.StatusNotFound, "Post not found")
			c.Abort()
			return
		}
		if post.UserID != user.ID {
			response.Error(c, http.StatusForbidden, "Not authorized")
			c.Abort()
			return
		}

		c.Set(ContextPostKey, post)
		c.Next()
	}
}

// CommentOwnership is the same contract as PostOwnership, scoped to the
// :commentId path parameter.
func CommentOwnership(comments CommentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID, ok := parsePositiveID(c.Param("commentId"))
		if !ok {
			response.Error(c, http.StatusBadRequest, "Invalid comment ID")
			c.Abort()
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Token required")
			c.Abort()
			return
		}

		comment, err := comments.GetByID(commentID)
		if err != nil {
			log.Printf("load comment for ownership check failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
			c.Abort()
			return
		}
		if comment == nil {
			response.Error(c, http.StatusNotFound, "Comment not found")
			c.Abort()
			return
		}
		if comment.UserID != user.ID {
			response.Error(c, http.StatusForbidden, "Not authorized")
			c.Abort()
			return
		}

		c.Set(ContextCommentKey, comment)
		c.Next()
	}
}

// SelfOwnership compares the :id path parameter against the resolved user.
// No lookup: the resolver already proved the account exists. A non-numeric
// id can never match, so it also ends in 403.
func SelfOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Token required")
			c.Abort()
			return
		}

		id, ok := parsePositiveID(c.Param("id"))
		if !ok || id != user.ID {
			response.Error(c, http.StatusForbidden, "Not authorized")
			c.Abort()
			return
		}

		c.Next()
	}
}

func PostFromContext(c *gin.Context) (*model.Post, bool) {
	value, exists := c.Get(ContextPostKey)
	if !exists {
		return nil, false
	}
	post, ok := value.(*model.Post)
	return post, ok
}

func CommentFromContext(c *gin.Context) (*model.Comment, bool) {
	value, exists := c.Get(ContextCommentKey)
	if !exists {
		return nil, false
	}
	comment, ok := value.(*model.Comment)
	return comment, ok
}

func parsePositiveID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
