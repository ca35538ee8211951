package routes

import (
	"inkwell/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, public *controllers.PublicController) {
	api := router.Group("/api")
	{
		api.GET("/articles", public.ListArticles)
		api.GET("/articles/:id", public.GetArticle)
		api.GET("/tags", public.ListTags)
	}
}
