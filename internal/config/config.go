package config

import (
	"fmt"
	"os"
	"strings"

	"codecomment/internal/common"

	"github.com/joho/godotenv"
)

// Environment variables read at startup
const (
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
)

const defaultCompletionsURL = "https://api.openai.com/v1/completions"

func init() {
	// Load .env file if it exists
	godotenv.Load()
}

// OpenAIAPIKey returns the bearer credential for the completion API.
// A missing credential is a startup failure; nothing may reach the
// network without it.
func OpenAIAPIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(EnvOpenAIAPIKey))
	if key == "" {
		return "", fmt.Errorf("%s is not set (export it or add it to a .env file)", EnvOpenAIAPIKey)
	}
	return key, nil
}

// CompletionsURL returns the completion endpoint, honoring an
// OPENAI_BASE_URL override.
func CompletionsURL() string {
	return common.GetStringWithDefault(os.Getenv(EnvOpenAIBaseURL), defaultCompletionsURL)
}
