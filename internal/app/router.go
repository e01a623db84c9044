package app

import (
	"chef_brigade_backend/docs"
	"chef_brigade_backend/internal/config"
	"chef_brigade_backend/internal/middleware"
	"chef_brigade_backend/internal/model"

	"chef_brigade_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	a.registerPublicRoutes(router, c)
	a.registerFeedRoutes(router, c, repos)
	a.registerMemberRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Authenticated by the shared webhook secret, not a member token.
		public.POST("/billing/webhook", c.billing.HandleWebhook)
	}
}

func (a *App) registerFeedRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	feed := router.Group("/api/feed")
	feed.Use(middleware.ActivityMiddleware(repos.user))
	{
		// Listing allows guests; gated posts are filtered to the free tier.
		feed.GET("/posts", middleware.TryAuthMiddleware(a.Config), c.feed.GetPosts)
		feed.GET("/posts/:id", middleware.TryAuthMiddleware(a.Config), c.feed.GetPost)

		authorized := feed.Group("/")
		authorized.Use(middleware.AuthMiddleware(a.Config))
		{
			authorized.POST("/posts", c.feed.CreatePost)
			authorized.DELETE("/posts/:id", c.feed.DeletePost)
			authorized.POST("/posts/:id/comments", c.feed.CreateComment)
			authorized.DELETE("/comments/:id", c.feed.DeleteComment)
			authorized.POST("/posts/:id/like", c.feed.ToggleLike)
			authorized.POST("/upload", c.feed.UploadImage)
		}
	}
}

func (a *App) registerMemberRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	member := router.Group("/api")
	member.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		member.GET("/profile", c.auth.GetProfile)
		member.PUT("/profile", c.user.UpdateProfile)
		member.POST("/profile/avatar", c.user.UploadAvatar)

		// Journaling is part of the free experience.
		journal := member.Group("/journal")
		{
			journal.GET("/entries", c.journal.ListEntries)
			journal.POST("/entries", c.journal.CreateEntry)
			journal.PUT("/entries/:id", c.journal.UpdateEntry)
			journal.DELETE("/entries/:id", c.journal.DeleteEntry)
			journal.GET("/stats", c.journal.GetStats)
			journal.GET("/prompt", c.journal.GetPrompt)
		}

		member.GET("/courses", c.course.ListCourses)
		member.GET("/courses/:id", c.course.GetCourse)
		member.POST("/lessons/:lessonId/progress", c.course.RecordProgress)

		member.GET("/notifications", c.broadcast.GetNotifications)
		member.POST("/notifications/:id/read", c.broadcast.MarkNotificationRead)

		billing := member.Group("/billing")
		{
			billing.POST("/checkout", c.billing.StartCheckout)
			billing.POST("/cancel", c.billing.CancelSubscription)
			billing.GET("/history", c.billing.GetHistory)
		}
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Admin),
	)
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.POST("/users/:id/disable", c.user.DisableUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		admin.POST("/courses", c.course.CreateCourse)
		admin.POST("/courses/:id/lessons", c.course.AddLesson)

		admin.GET("/broadcasts", c.broadcast.ListBroadcasts)
		admin.POST("/broadcasts", c.broadcast.CreateBroadcast)
		admin.PUT("/broadcasts/:id", c.broadcast.UpdateBroadcast)
		admin.DELETE("/broadcasts/:id", c.broadcast.DeleteBroadcast)
		admin.POST("/broadcasts/:id/schedule", c.broadcast.ScheduleBroadcast)
		admin.POST("/broadcasts/:id/send", c.broadcast.SendBroadcast)

		admin.GET("/analytics/overview", c.analytics.GetOverview)
		admin.GET("/analytics/engagement", c.analytics.GetEngagement)
		admin.GET("/analytics/courses", c.analytics.GetCourseCompletions)
	}
}
