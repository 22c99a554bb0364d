package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	UploadDir string

	// optional bootstrap admin account
	AdminStaffID   string
	AdminStaffName string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "database.db"),
		Port:           getEnv("PORT", "5000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(24) * time.Hour,
		UploadDir:      getEnv("UPLOAD_DIR", "static/profile_images"),
		AdminStaffID:   os.Getenv("ADMIN_STAFF_ID"),
		AdminStaffName: getEnv("ADMIN_STAFF_NAME", "Admin"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
