package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dwain-Anderson/carriage-web/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
		auth.POST("/login", controllers.LoginUser)
	}
}
