package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env      string
	Port     string
	LogLevel string

	Provider       string
	GeminiAPIKey   string
	GeminiModel    string
	RequestTimeout time.Duration

	DefaultQuestions int
	MaxQuestions     int

	AllowedOrigins []string
}

// Load reads configuration from the environment after applying an optional
// .env file. Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("GEMINI_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("%w: GEMINI_TIMEOUT: %v", ErrInvalidConfig, err)
	}
	defaultQuestions, err := getInt("QUIZ_DEFAULT_QUESTIONS", 10)
	if err != nil {
		return nil, err
	}
	maxQuestions, err := getInt("QUIZ_MAX_QUESTIONS", 20)
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "5000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Provider:         strings.ToLower(getEnv("QUIZ_PROVIDER", ProviderGemini)),
		GeminiAPIKey:     apiKey,
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		RequestTimeout:   timeout,
		DefaultQuestions: defaultQuestions,
		MaxQuestions:     maxQuestions,
		AllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv applies ./.env when present. A missing file is not an error;
// an unreadable or malformed one is.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
		if c.GeminiModel == "" {
			errs = append(errs, errors.New("GEMINI_MODEL must not be empty"))
		}
	case ProviderMock:
	default:
		errs = append(errs, fmt.Errorf("unknown QUIZ_PROVIDER %q", c.Provider))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("GEMINI_TIMEOUT must be positive"))
	}
	if c.DefaultQuestions <= 0 || c.MaxQuestions <= 0 {
		errs = append(errs, errors.New("question counts must be positive"))
	} else if c.DefaultQuestions > c.MaxQuestions {
		errs = append(errs, errors.New("QUIZ_DEFAULT_QUESTIONS exceeds QUIZ_MAX_QUESTIONS"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidConfig, key)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
