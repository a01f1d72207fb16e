package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func LocationRoutes(api *gin.RouterGroup) {
	locations := api.Group("/locations")
	{
		locations.GET("", middleware.RequireRole(models.RoleRider), controllers.ListLocations)
		locations.GET("/:id", middleware.RequireRole(models.RoleRider), controllers.GetLocation)
		locations.POST("", middleware.RequireRole(models.RoleDispatcher), controllers.CreateLocation)
		locations.PUT("/:id", middleware.RequireRole(models.RoleDispatcher), controllers.UpdateLocation)
		locations.DELETE("/:id", middleware.RequireRole(models.RoleDispatcher), controllers.DeleteLocation)
	}
}
