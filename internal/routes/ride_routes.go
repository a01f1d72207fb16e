package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/models"
)

func RideRoutes(api *gin.RouterGroup) {
	rides := api.Group("/rides")
	rides.Use(middleware.RequireRole(models.RoleRider))
	{
		rides.GET("", controllers.ListRides)
		rides.GET("/:id", controllers.GetRide)
		rides.POST("", controllers.CreateRide)
		// ownership checks for non-dispatcher callers live in the handlers
		rides.PUT("/:id", controllers.UpdateRide)
		rides.DELETE("/:id", controllers.DeleteRide)
	}
}
