package config

import (
	"strings"
	"testing"
)

func TestOpenAIAPIKey(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvOpenAIAPIKey, "sk-test")
		key, err := OpenAIAPIKey()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "sk-test" {
			t.Errorf("OpenAIAPIKey() = %q, want %q", key, "sk-test")
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv(EnvOpenAIAPIKey, "")
		_, err := OpenAIAPIKey()
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !strings.Contains(err.Error(), EnvOpenAIAPIKey) {
			t.Errorf("error should name the variable: %v", err)
		}
	})

	t.Run("blank", func(t *testing.T) {
		t.Setenv(EnvOpenAIAPIKey, "   ")
		if _, err := OpenAIAPIKey(); err == nil {
			t.Fatal("expected error for blank key")
		}
	})
}

func TestCompletionsURL(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvOpenAIBaseURL, "")
		if url := CompletionsURL(); url != defaultCompletionsURL {
			t.Errorf("CompletionsURL() = %q, want %q", url, defaultCompletionsURL)
		}
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv(EnvOpenAIBaseURL, "http://127.0.0.1:9999/v1/completions")
		if url := CompletionsURL(); url != "http://127.0.0.1:9999/v1/completions" {
			t.Errorf("CompletionsURL() = %q, want override", url)
		}
	})
}
