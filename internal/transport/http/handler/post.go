package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gosocial/internal/app"
	"gosocial/internal/transport/http/middleware"
	"gosocial/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type PostBodyRequest struct {
	Body string `json:"body" binding:"required"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	result, err := h.postService.List(page, limit)
	if err != nil {
		log.Printf("list posts failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.OKWithMeta(c, result.Posts, response.Pagination{
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.Detail(uint(postID))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "Post not found")
		default:
			log.Printf("post detail failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Token required")
		return
	}

	var req PostBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Body required")
		return
	}

	post, err := h.postService.Create(user, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Body required")
		default:
			log.Printf("create post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, post)
}

// Update operates on the post the ownership guard already loaded.
func (h *PostHandler) Update(c *gin.Context) {
	post, ok := middleware.PostFromContext(c)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	var req PostBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Body required")
		return
	}

	updated, err := h.postService.Update(post, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Body required")
		default:
			log.Printf("update post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, updated)
}

func (h *PostHandler) Delete(c *gin.Context) {
	post, ok := middleware.PostFromContext(c)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.postService.Delete(post); err != nil {
		log.Printf("delete post failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.Message(c, "Post deleted")
}

func (h *PostHandler) Like(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Token required")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	like, likeErr := h.postService.Like(uint(postID), user.ID)
	if likeErr != nil {
		switch {
		case errors.Is(likeErr, app.ErrAlreadyLiked):
			response.Error(c, http.StatusConflict, "Already liked")
		default:
			log.Printf("like post failed: %v", likeErr)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, like)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Token required")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.postService.Unlike(uint(postID), user.ID); err != nil {
		switch {
		case errors.Is(err, app.ErrLikeNotFound):
			response.Error(c, http.StatusNotFound, "Like not found")
		default:
			log.Printf("unlike post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.Message(c, "Unliked successfully")
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
