package api

import (
	"HeidiCore/internal/api/middleware"
	"HeidiCore/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, jwtSecret string, tokens middleware.TokenStore) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		// Open endpoints: health, backend status, demo bootstrap.
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
		apiGroup.GET("/azure/status", group.HeidiHandler.Status)
		apiGroup.POST("/seed", group.SeedHandler.Seed)

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware(jwtSecret, tokens))
		{
			userGroup := authGroup.Group("/user")
			{
				userGroup.GET("/:id", group.UserHandler.GetUser)
				userGroup.PATCH("/:id", group.UserHandler.UpdateUser)
			}

			authGroup.GET("/earnings/:userId", group.EarningHandler.GetEarnings)
			authGroup.POST("/earnings", group.EarningHandler.CreateEarning)

			authGroup.GET("/tiers/:userId", group.TierHandler.GetTiers)
			authGroup.POST("/tiers", group.TierHandler.CreateTier)
			authGroup.PATCH("/tiers/:id", group.TierHandler.UpdateTier)

			authGroup.GET("/quests/:userId", group.QuestHandler.GetQuests)
			authGroup.POST("/quests", group.QuestHandler.CreateQuest)
			authGroup.PATCH("/quests/:id", group.QuestHandler.UpdateQuest)

			authGroup.GET("/posts/:userId", group.PostHandler.GetPosts)
			authGroup.POST("/posts", group.PostHandler.CreatePost)
			authGroup.POST("/posts/:id/like", group.PostHandler.LikePost)

			authGroup.GET("/analytics/:userId", group.AnalyticsHandler.GetAnalytics)

			aiGroup := authGroup.Group("/ai")
			{
				aiGroup.POST("/chat", group.HeidiHandler.Chat)
				aiGroup.POST("/ad-read", group.HeidiHandler.AdRead)
				aiGroup.POST("/reply", group.HeidiHandler.Reply)
				aiGroup.POST("/clip-post", group.HeidiHandler.ClipPost)
				aiGroup.POST("/sponsor-match", group.HeidiHandler.SponsorMatch)
				aiGroup.POST("/course-outline", group.HeidiHandler.CourseOutline)
			}
		}
	}

	return r
}
