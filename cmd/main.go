package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/routes"
	"github.com/GuilhermeLuzs/dice-play/services"
)

func main() {
	if os.Getenv("DOCKER_ENV") != "true" {
		_ = godotenv.Load()
	}

	config.ConnectDB()
	config.ConnectRedis()

	// Sincronização diária das views com o YouTube
	if os.Getenv("YOUTUBE_API_KEY") != "" {
		cron := services.IniciarAtualizadorVisualizacoes(config.DB)
		defer cron.Stop()
	}

	r := gin.Default()

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://diceplay.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(r.Run(":" + port))
}
