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

type CommentHandler struct {
	commentService *app.CommentService
}

type CommentContentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewCommentHandler(commentService *app.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *gin.Context) {
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

	var req CommentContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Content required")
		return
	}

	comment, createErr := h.commentService.Create(uint(postID), user, req.Content)
	if createErr != nil {
		switch {
		case errors.Is(createErr, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Content required")
		case errors.Is(createErr, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "Post not found")
		default:
			log.Printf("create comment failed: %v", createErr)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, comment)
}

// Update operates on the comment the ownership guard already loaded.
func (h *CommentHandler) Update(c *gin.Context) {
	comment, ok := middleware.CommentFromContext(c)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	var req CommentContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Content required")
		return
	}

	updated, err := h.commentService.Update(comment, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Content required")
		default:
			log.Printf("update comment failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, updated)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	comment, ok := middleware.CommentFromContext(c)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := h.commentService.Delete(comment); err != nil {
		log.Printf("delete comment failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.Message(c, "Comment deleted")
}
