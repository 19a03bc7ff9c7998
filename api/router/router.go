package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"newsroom/api/auth"
	"newsroom/api/handlers"
	"newsroom/api/middleware"
	"newsroom/db"
	_ "newsroom/docs"
	"newsroom/repositories"
)

func New(jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		postsRepo := repositories.NewPostRepository(db.Database())
		usersRepo := repositories.NewUserRepository(db.Database())

		api.GET("/posts", handlers.ListPostsHandler(postsRepo))
		api.GET("/posts/:id", handlers.GetPostHandler(postsRepo))
		api.GET("/posts/:id/calendar.ics", handlers.PostICSHandler(postsRepo))
		api.GET("/posts/:id/gcal", handlers.PostGoogleCalendarHandler(postsRepo))

		authed := api.Group("", middleware.AuthMiddleware(jwtManager))
		{
			authed.GET("/me", handlers.GetMeHandler(usersRepo))
			authed.POST("/me/profile", handlers.BootstrapProfileHandler(usersRepo))
			authed.PUT("/me/preferences", handlers.UpdatePreferencesHandler(usersRepo))
			authed.GET("/me/starred", handlers.ListStarredHandler(usersRepo, postsRepo))
			authed.GET("/feed/foryou", handlers.ForYouHandler(usersRepo, postsRepo))
			authed.POST("/posts/:id/star", handlers.StarPostHandler(usersRepo, postsRepo))
			authed.DELETE("/posts/:id/star", handlers.UnstarPostHandler(usersRepo))
		}

		admin := api.Group("/admin", middleware.AuthMiddleware(jwtManager), middleware.AdminOnly())
		{
			admin.POST("/posts", handlers.CreatePostHandler(postsRepo))
			admin.PUT("/posts/:id", handlers.UpdatePostHandler(postsRepo))
			admin.PUT("/posts/:id/hidden", handlers.SetPostHiddenHandler(postsRepo))
		}
	}

	return r
}
