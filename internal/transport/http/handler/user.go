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

type UserHandler struct {
	authService *app.AuthService
	userService *app.UserService
}

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Username string  `json:"username" binding:"required,max=64"`
	Password string  `json:"password" binding:"required"`
	Bio      *string `json:"bio"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Username string  `json:"username" binding:"omitempty,max=64"`
	Bio      *string `json:"bio"`
	Password string  `json:"password"`
}

func NewUserHandler(authService *app.AuthService, userService *app.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "name, username and password required")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "name, username and password required")
		case errors.Is(err, app.ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "Username already taken")
		default:
			log.Printf("register failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.OK(c, user.Sanitize())
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password required")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "username and password required")
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, "Incorrect username or password")
		default:
			log.Printf("login failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.OK(c, result)
}

// Verify echoes the identity the auth middleware resolved; reaching here at
// all means the token was good.
func (h *UserHandler) Verify(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Token required")
		return
	}
	response.OK(c, user.Sanitize())
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		log.Printf("list users failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	detail, err := h.userService.Detail(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("user detail failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, detail)
}

func (h *UserHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Token required")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := h.userService.Update(user, app.UpdateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "Username already taken")
		default:
			log.Printf("update user failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	response.OK(c, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Token required")
		return
	}

	if err := h.userService.Delete(user.ID); err != nil {
		log.Printf("delete user failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.Message(c, "User deleted")
}
