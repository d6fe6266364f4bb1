package config

import (
	"os"
	"strconv"
)

// Config holds the configuration for the relevance service
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Engine  EngineConfig
	Chatbot ChatbotConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	DataDir string
}

// EngineConfig holds relevance engine defaults
type EngineConfig struct {
	DefaultLimit     int
	SummarySentences int
	MaxTags          int
}

// ChatbotConfig holds chatbot router configuration
type ChatbotConfig struct {
	ResponsesPath string
	ResultLimit   int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetStringEnv("SERVER_PORT", "8080"),
		},
		Store: StoreConfig{
			DataDir: GetStringEnv("STORE_DATA_DIR", "./data"),
		},
		Engine: EngineConfig{
			DefaultLimit:     GetIntEnv("ENGINE_DEFAULT_LIMIT", 10),
			SummarySentences: GetIntEnv("ENGINE_SUMMARY_SENTENCES", 3),
			MaxTags:          GetIntEnv("ENGINE_MAX_TAGS", 5),
		},
		Chatbot: ChatbotConfig{
			ResponsesPath: GetStringEnv("CHATBOT_RESPONSES_PATH", ""),
			ResultLimit:   GetIntEnv("CHATBOT_RESULT_LIMIT", 10),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
