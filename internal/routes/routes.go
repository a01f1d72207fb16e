package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine with every route group mounted. The caller
// owns serving; tests mount the returned engine in httptest.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthRoutes(r)

	api := r.Group("/api")
	AdminRoutes(api)
	DriverRoutes(api)
	RiderRoutes(api)
	VehicleRoutes(api)
	LocationRoutes(api)
	RideRoutes(api)

	return r
}
