package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eats-backend/configs"
	"eats-backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
