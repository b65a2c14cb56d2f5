package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Assistant AssistantConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AssistantConfig describes the remote text-completion capability: an
// OpenAI-compatible chat-completions endpoint, a model identifier and a
// bearer token, all supplied out-of-band.
type AssistantConfig struct {
	Token       string
	Endpoint    string
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly
	// (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	temperature, _ := strconv.ParseFloat(getEnv("ASSISTANT_TEMPERATURE", "1.0"), 64)
	topP, _ := strconv.ParseFloat(getEnv("ASSISTANT_TOP_P", "1.0"), 64)
	maxTokens, _ := strconv.Atoi(getEnv("ASSISTANT_MAX_TOKENS", "1000"))
	assistantTimeout, _ := strconv.Atoi(getEnv("ASSISTANT_TIMEOUT", "60"))

	// The token historically lived in GITHUB_TOKEN (GitHub Models endpoint);
	// ASSISTANT_TOKEN takes precedence when both are set.
	token := getEnv("ASSISTANT_TOKEN", os.Getenv("GITHUB_TOKEN"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "moneyflow"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Assistant: AssistantConfig{
			Token:       token,
			Endpoint:    getEnv("ASSISTANT_ENDPOINT", "https://models.inference.ai.azure.com"),
			Model:       getEnv("ASSISTANT_MODEL", "gpt-4o-mini"),
			Temperature: temperature,
			TopP:        topP,
			MaxTokens:   maxTokens,
			Timeout:     time.Duration(assistantTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
