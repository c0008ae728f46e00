package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderCLI       = "cli"
	ProviderMock      = "mock"

	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
)

type Config struct {
	Port    string
	AppEnv  string
	Origins []string

	LLMProvider     string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	ClaudeCLIPath   string

	StoreBackend        string
	FirebaseCredentials string
	FirebaseProjectID   string
}

// MissingEnvError reports a required variable that was not set.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%s is missing. Set it in the environment or .env file", e.Key)
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:    GetEnv("PORT", "8080"),
		AppEnv:  GetEnv("APP_ENV", "development"),
		Origins: splitList(GetEnv("CORS_ALLOWED_ORIGINS", "*")),

		LLMProvider:     strings.ToLower(GetEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     GetEnv("GEMINI_MODEL", "gemini-1.5-pro-latest"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  GetEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		ClaudeCLIPath:   GetEnv("CLAUDE_CLI_PATH", "claude"),

		StoreBackend:        strings.ToLower(GetEnv("STORE_BACKEND", StoreFirestore)),
		FirebaseCredentials: GetEnv("FIREBASE_CREDENTIALS", "firebase_credentials.json"),
		FirebaseProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
	}

	switch cfg.LLMProvider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, &MissingEnvError{Key: "GEMINI_API_KEY"}
		}
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, &MissingEnvError{Key: "ANTHROPIC_API_KEY"}
		}
	case ProviderCLI, ProviderMock:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	switch cfg.StoreBackend {
	case StoreFirestore, StorePostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// GetEnv returns the trimmed value of key, or fallback when it is unset or blank.
func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
