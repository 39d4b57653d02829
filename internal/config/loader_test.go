package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Name != "blogforge-api" {
		t.Fatalf("app.name = %q", cfg.App.Name)
	}
	if cfg.Server.HTTP.Port != 8080 {
		t.Fatalf("server.http.port = %d", cfg.Server.HTTP.Port)
	}
	if cfg.LLM.Groq.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("llm.groq.model = %q", cfg.LLM.Groq.Model)
	}
	if cfg.LLM.Groq.MaxTokens != 3000 {
		t.Fatalf("llm.groq.max_tokens = %d", cfg.LLM.Groq.MaxTokens)
	}
	if cfg.LLM.Groq.Temperature != 0.75 {
		t.Fatalf("llm.groq.temperature = %v", cfg.LLM.Groq.Temperature)
	}
	if cfg.LLM.Groq.Timeout != 60*time.Second {
		t.Fatalf("llm.groq.timeout = %v", cfg.LLM.Groq.Timeout)
	}
	if cfg.LLM.Groq.APIKey != "" {
		t.Fatalf("llm.groq.api_key = %q, want empty", cfg.LLM.Groq.APIKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LLM.Groq.APIKey != "gsk-test" {
		t.Fatalf("llm.groq.api_key = %q", cfg.LLM.Groq.APIKey)
	}
	if cfg.LLM.Groq.Model != "llama-3.1-8b-instant" {
		t.Fatalf("llm.groq.model = %q", cfg.LLM.Groq.Model)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("BF_SET_VAR", "value")

	cases := []struct {
		in   string
		want string
	}{
		{"${BF_SET_VAR}", "value"},
		{"${BF_SET_VAR:fallback}", "value"},
		{"${BF_UNSET_VAR:fallback}", "fallback"},
		{"${BF_UNSET_VAR:}", ""},
		{"${BF_UNSET_VAR}", "${BF_UNSET_VAR}"},
		{"plain text", "plain text"},
	}

	for _, tc := range cases {
		if got := expandEnv(tc.in); got != tc.want {
			t.Fatalf("expandEnv(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
