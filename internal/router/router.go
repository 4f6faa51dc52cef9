package router

import (
	"github.com/Abhivamsh/community-backend/internal/config"
	"github.com/Abhivamsh/community-backend/internal/handlers"
	"github.com/Abhivamsh/community-backend/internal/middleware"
	"github.com/Abhivamsh/community-backend/internal/repository"
	"github.com/Abhivamsh/community-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup configures and returns the Gin router
func Setup(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		cors.Default(),
	)

	store := repository.NewStore(db)
	userService := services.NewUserService(store)
	feedService := services.NewFeedService(store, logger)
	likeService := services.NewLikeService(store, cfg, logger)
	leaderboardService := services.NewLeaderboardService(store, logger)

	postHandler := handlers.NewPostHandler(feedService, likeService, userService)
	commentHandler := handlers.NewCommentHandler(feedService, likeService, userService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")
	{
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)
			posts.GET("/:id", postHandler.GetPost)
			posts.POST("", postHandler.CreatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
			posts.POST("/:id/like", postHandler.LikePost)
			posts.DELETE("/:id/like", postHandler.UnlikePost)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/post/:post_id", commentHandler.GetCommentsByPost)
			comments.POST("", commentHandler.CreateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
			comments.POST("/:id/like", commentHandler.LikeComment)
			comments.DELETE("/:id/like", commentHandler.UnlikeComment)
		}

		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	}

	return router
}
