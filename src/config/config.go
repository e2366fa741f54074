package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerHost  string
	ProjectsDir string
	PublicDir   string

	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	SessionDuration   time.Duration
	SecureCookies     bool

	CORSOrigins []string

	OptimizerCache string
}

func Load() *Config {
	// Load environment variables from .env file when present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		ServerHost:  getEnv("SERVER_HOST", ":8080"),
		ProjectsDir: getEnv("PROJECTS_DIR", "data/projects"),
		PublicDir:   getEnv("PUBLIC_DIR", "public"),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionDuration:   getEnvDuration("SESSION_DURATION", 24*time.Hour),
		SecureCookies:     getEnvBool("SECURE_COOKIES", false),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),

		OptimizerCache: getEnv("OPTIMIZATION_CACHE", ".image-optimization.json"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Invalid boolean for %s, using default %t", key, fallback)
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
