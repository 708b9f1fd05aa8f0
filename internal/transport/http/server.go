package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "gosocial/internal/app"
	"gosocial/internal/bootstrap"
	"gosocial/internal/repository"
	"gosocial/internal/transport/http/handler"
	"gosocial/internal/transport/http/middleware"
)

// NewRouter wires repositories, services and the per-route guard chains.
// Every protected route lists its guards explicitly, left to right, in the
// order they must pass: auth, then (where needed) an ownership check.
func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	commentRepo := repository.NewCommentRepository(app.MySQL)
	likeRepo := repository.NewPostLikeRepository(app.MySQL)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	userService := appsvc.NewUserService(userRepo)
	postService := appsvc.NewPostService(postRepo, likeRepo)
	commentService := appsvc.NewCommentService(commentRepo, postRepo)

	userHandler := handler.NewUserHandler(authService, userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(app)

	auth := middleware.AuthJWT(app.Config.Auth.JWTSecret, userRepo)
	postOwner := middleware.PostOwnership(postRepo)
	commentOwner := middleware.CommentOwnership(commentRepo)
	selfOwner := middleware.SelfOwnership()

	router.GET("/healthz", healthHandler.Check)

	users := router.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/verify", auth, userHandler.Verify)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Detail)
	users.PUT("/edit/:id", auth, selfOwner, userHandler.Update)
	users.DELETE("/:id", auth, selfOwner, userHandler.Delete)

	posts := router.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Detail)
	posts.POST("", auth, postHandler.Create)
	posts.PUT("/:id", auth, postOwner, postHandler.Update)
	posts.DELETE("/:id", auth, postOwner, postHandler.Delete)
	posts.PUT("/:id/like", auth, postHandler.Like)
	posts.PUT("/:id/unlike", auth, postHandler.Unlike)

	// gin requires one wildcard name per segment, so the comment routes
	// reuse :id for the post id.
	posts.POST("/:id/comments", auth, commentHandler.Create)
	posts.PUT("/:id/comments/:commentId", auth, commentOwner, commentHandler.Update)
	posts.DELETE("/:id/comments/:commentId", auth, commentOwner, commentHandler.Delete)

	return router
}
