package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func RiderRoutes(api *gin.RouterGroup) {
	riders := api.Group("/riders")
	{
		riders.GET("", middleware.RequireRole(models.RoleAdmin), controllers.ListRiders)
		riders.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateRider)
		riders.GET("/:id", middleware.RequireRole(models.RoleRider), controllers.GetRider)
		riders.GET("/:id/profile", middleware.RequireRole(models.RoleRider), controllers.GetRiderProfile)
		riders.GET("/:id/organization", middleware.RequireRole(models.RoleRider), controllers.GetRiderOrganization)
		riders.GET("/:id/accessibility", middleware.RequireRole(models.RoleRider), controllers.GetRiderAccessibility)
		riders.GET("/:id/favorites", middleware.RequireRole(models.RoleRider), controllers.GetRiderFavorites)
		riders.POST("/:id/favorites", middleware.SelfOrRole(models.RoleAdmin), controllers.AddRiderFavorite)
		riders.PUT("/:id", middleware.SelfOrRole(models.RoleAdmin), controllers.UpdateRider)
		riders.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteRider)
	}
}
