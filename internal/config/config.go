package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	Port           string
	FrontendURL    string
	BackendURL     string
	AllowedOrigins []string
}

// Load reads the environment once at startup and returns an immutable
// Config. Handlers receive the values they need instead of reading the
// environment themselves.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	return Config{
		MongoURI:    getEnvOrDefault("MONGO_URI", ""),
		DBName:      getEnvOrDefault("DB_NAME", "houseplanfiles"),
		JWTSecret:   getEnvOrDefault("JWT_SECRET", ""),
		Port:        getEnvOrDefault("PORT", "5000"),
		FrontendURL: getEnvOrDefault("FRONTEND_URL", "https://www.houseplanfiles.com"),
		BackendURL:  getEnvOrDefault("BACKEND_URL", "https://architect-backend.vercel.app"),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{
			"https://www.houseplanfiles.com",
			"https://houseplansfilesfrontend.vercel.app",
		}),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
