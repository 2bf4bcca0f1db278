package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// built once in Load and handed to the packages that need it; nothing
// reads os.Getenv after startup.
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	JWTSecret     []byte
	ClassifierURL string
	ClassifierKey string
	UploadDir     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := &Config{
		Port:          getenv("PORT", ":4000"),
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGODB_DB", "vesturedb"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		ClassifierURL: os.Getenv("CLASSIFIER_URL"),
		ClassifierKey: os.Getenv("CLASSIFIER_API_KEY"),
		UploadDir:     getenv("UPLOAD_DIR", "static/uploads"),
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
