package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port    string
	JWTKey  string
	LogMode string

	APIBaseURL string        // Backend REST API the drafts are submitted to
	APITimeout time.Duration // Per-request timeout for backend calls

	DBDriver   string // postgres, mysql or sqlite
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBDSN      string // Overrides the individual DB_* fields when set

	DraftIdleTTL   time.Duration
	DraftSweepCron string
}

// DefaultJWTKey is the fallback when JWT_SECRET_KEY is unset.
const DefaultJWTKey = "defaultSecret"

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:    getEnv("PORT", "3000"),
		JWTKey:  getEnv("JWT_SECRET_KEY", DefaultJWTKey),
		LogMode: getEnv("LOG_MODE", "development"),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APITimeout: time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 30)) * time.Second,

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "fomo_admin"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBDSN:      getEnv("DB_DSN", ""),

		DraftIdleTTL:   time.Duration(getEnvInt("DRAFT_IDLE_TTL_MINUTES", 120)) * time.Minute,
		DraftSweepCron: getEnv("DRAFT_SWEEP_CRON", "*/10 * * * *"),
	}

	if AppConfig.JWTKey == DefaultJWTKey {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
