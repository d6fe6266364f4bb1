package chatbot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/founderlink/backend/internal/chatbot"
)

func TestLoadResponsesDefaults(t *testing.T) {
	responses, err := chatbot.LoadResponses("")
	assert.NoError(t, err)
	assert.Equal(t, chatbot.DefaultResponses(), responses)

	// A missing file also yields the defaults without error
	responses, err = chatbot.LoadResponses("/nonexistent/responses.yaml")
	assert.NoError(t, err)
	assert.Equal(t, chatbot.DefaultResponses(), responses)
}

func TestLoadResponsesOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "responses.yaml")
	err := os.WriteFile(path, []byte("greeting: \"Welcome aboard!\"\n"), 0644)
	assert.NoError(t, err)

	responses, err := chatbot.LoadResponses(path)
	assert.NoError(t, err)
	assert.Equal(t, "Welcome aboard!", responses.Greeting)
	// Fields absent from the file keep their defaults
	assert.Equal(t, chatbot.DefaultResponses().Fallback, responses.Fallback)
}

func TestLoadResponsesBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "responses.yaml")
	err := os.WriteFile(path, []byte(":\t{not yaml"), 0644)
	assert.NoError(t, err)

	responses, err := chatbot.LoadResponses(path)
	assert.Error(t, err)
	// Defaults still come back usable
	assert.Equal(t, chatbot.DefaultResponses(), responses)
}
