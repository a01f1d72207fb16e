package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func AdminRoutes(api *gin.RouterGroup) {
	admins := api.Group("/admins")
	admins.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admins.GET("", controllers.ListAdmins)
		admins.POST("", controllers.CreateAdmin)
		admins.DELETE("/:id", controllers.DeleteAdmin)
	}
}
