package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Grammar  GrammarConfig
	Letter   LetterConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type GrammarConfig struct {
	BaseURL string
	APIKey  string
}

type LetterConfig struct {
	SealImageURL    string
	BarcodeWidth    int
	BarcodeHeight   int
	DraftSavedTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Grammar: GrammarConfig{
			BaseURL: getEnv("GRAMMAR_CHECK_BASE_URL", ""),
			APIKey:  getEnv("GRAMMAR_CHECK_API_KEY", ""),
		},
		Letter: LetterConfig{
			SealImageURL:    getEnv("SEAL_IMAGE_URL", "/uploads/dhs-seal.png"),
			BarcodeWidth:    getEnvAsInt("BARCODE_WIDTH", 400),
			BarcodeHeight:   getEnvAsInt("BARCODE_HEIGHT", 60),
			DraftSavedTopic: getEnv("DRAFT_SAVED_TOPIC_NAME", "LETTER_DRAFT_SAVED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
