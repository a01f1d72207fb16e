package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func VehicleRoutes(api *gin.RouterGroup) {
	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", middleware.RequireRole(models.RoleRider), controllers.ListVehicles)
		vehicles.GET("/:id", middleware.RequireRole(models.RoleRider), controllers.GetVehicle)
		vehicles.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateVehicle)
		vehicles.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateVehicle)
		vehicles.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteVehicle)
	}
}
