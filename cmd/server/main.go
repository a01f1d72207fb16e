package main

import (
	"log"
	"net/http"

	"github.com/Dwain-Anderson/carriage-web/internal/config"
	"github.com/Dwain-Anderson/carriage-web/internal/logger"
	"github.com/Dwain-Anderson/carriage-web/internal/middleware"
	"github.com/Dwain-Anderson/carriage-web/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the entity tables
	config.InitDB()

	r := routes.SetupRouter()

	// Wrap with CORS for the SPA frontends
	handler := middleware.EnableCORS(r)

	addr := config.GetEnv("SERVER_ADDR", "0.0.0.0:8080")
	log.Printf("Carriage server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
