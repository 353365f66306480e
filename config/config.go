package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	PublicDir string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	// A missing .env is fine; real deployments configure the environment directly.
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI not set - aborting")
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))

	return &Config{
		Port:      getEnv("PORT", "3001"),
		MongoURI:  mongoURI,
		DBName:    getEnv("MONGODB_DATABASE", "biketrak"),
		JWTSecret: getEnv("JWT_SECRET", "your_secret_key"),
		PublicDir: getEnv("PUBLIC_DIR", "./public"),

		// Email settings (welcome mail is skipped when the host is empty)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@biketrak.com"),
		FromName:     getEnv("FROM_NAME", "Biketrak"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
