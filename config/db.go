package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GuilhermeLuzs/dice-play/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ Auto migration failed:", err)
	}

	fmt.Println("✅ Connected to PostgreSQL DB and Migrated!")

	// Connection pool
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Não foi possível obter o objeto de banco: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// Migrate cria as tabelas. Também é usado pelos testes com SQLite em memória.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Video{}, "Tags", &models.VideoTag{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.TipoPerfil{},
		&models.Avatar{},
		&models.Perfil{},
		&models.Video{},
		&models.Tag{},
		&models.VideoTag{},
		&models.Participante{},
		&models.VideoPerfil{},
	)
}
