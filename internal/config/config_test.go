package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/founderlink/backend/internal/config"
)

func TestLoadDefaultConfig(t *testing.T) {
	clearEnvVars()

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.Equal(t, 10, cfg.Engine.DefaultLimit)
	assert.Equal(t, 3, cfg.Engine.SummarySentences)
	assert.Equal(t, 5, cfg.Engine.MaxTags)
	assert.Equal(t, "", cfg.Chatbot.ResponsesPath)
	assert.Equal(t, 10, cfg.Chatbot.ResultLimit)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envVars := map[string]string{
		"SERVER_PORT":              "9090",
		"STORE_DATA_DIR":           "/var/lib/founderlink",
		"ENGINE_DEFAULT_LIMIT":     "25",
		"ENGINE_SUMMARY_SENTENCES": "5",
		"ENGINE_MAX_TAGS":          "8",
		"CHATBOT_RESPONSES_PATH":   "/etc/founderlink/responses.yaml",
		"CHATBOT_RESULT_LIMIT":     "4",
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	defer clearEnvVars()

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/founderlink", cfg.Store.DataDir)
	assert.Equal(t, 25, cfg.Engine.DefaultLimit)
	assert.Equal(t, 5, cfg.Engine.SummarySentences)
	assert.Equal(t, 8, cfg.Engine.MaxTags)
	assert.Equal(t, "/etc/founderlink/responses.yaml", cfg.Chatbot.ResponsesPath)
	assert.Equal(t, 4, cfg.Chatbot.ResultLimit)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	os.Setenv("ENGINE_DEFAULT_LIMIT", "lots")
	defer clearEnvVars()

	cfg := config.Load()
	assert.Equal(t, 10, cfg.Engine.DefaultLimit)
}

func clearEnvVars() {
	for _, key := range []string{
		"SERVER_PORT",
		"STORE_DATA_DIR",
		"ENGINE_DEFAULT_LIMIT",
		"ENGINE_SUMMARY_SENTENCES",
		"ENGINE_MAX_TAGS",
		"CHATBOT_RESPONSES_PATH",
		"CHATBOT_RESULT_LIMIT",
	} {
		os.Unsetenv(key)
	}
}
