package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB guarda a denylist de tokens revogados no logout. Se ficar nil o
// middleware pula a checagem (modo degradado, tokens valem até expirar).
var RDB *redis.Client

func ConnectRedis() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis indisponível (%v) — logout não vai revogar tokens", err)
		return
	}

	RDB = client
	fmt.Println("✅ Connected to Redis!")
}
