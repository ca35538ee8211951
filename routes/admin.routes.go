package routes

import (
	"inkwell/internal/controllers"
	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(
	router *gin.Engine,
	tokens *services.TokenService,
	auth *controllers.AuthController,
	articles *controllers.ArticleController,
	tags *controllers.TagController,
) {
	admin := router.Group("/api/admin")
	admin.POST("/login", auth.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/articles", articles.ListArticles)
		protected.POST("/articles", articles.CreateArticle)
		protected.GET("/articles/:id", articles.GetArticle)
		protected.PUT("/articles/:id", articles.UpdateArticle)
		protected.PATCH("/articles/:id/status", articles.ToggleArticleStatus)
		protected.DELETE("/articles/:id", articles.DeleteArticle)

		protected.GET("/tags", tags.ListTags)
		protected.POST("/tags", tags.CreateTag)
		protected.PUT("/tags/:id", tags.UpdateTag)
		protected.DELETE("/tags/:id", tags.DeleteTag)
	}
}
