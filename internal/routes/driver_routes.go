package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func DriverRoutes(api *gin.RouterGroup) {
	drivers := api.Group("/drivers")
	{
		drivers.GET("", middleware.RequireRole(models.RoleRider), controllers.ListDrivers)
		drivers.GET("/:id", middleware.RequireRole(models.RoleRider), controllers.GetDriver)
		drivers.GET("/:id/profile", middleware.RequireRole(models.RoleRider), controllers.GetDriverProfile)
		drivers.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateDriver)
		drivers.PUT("/:id", middleware.SelfOrRole(models.RoleAdmin), controllers.UpdateDriver)
		drivers.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDriver)
	}
}
