package aiquiz

import (
	"context"
	"time"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

type AIQuizContainer struct {
	Provider Provider
	Service  Service
	Handler  *Handler
}

func NewAIQuizContainer(ctx context.Context, cfg *config.Config) (*AIQuizContainer, error) {
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider, Options{
		DefaultQuestions: cfg.DefaultQuestions,
		MaxQuestions:     cfg.MaxQuestions,
		Timeout:          cfg.RequestTimeout,
	})
	handler := NewHandler(service)

	return &AIQuizContainer{
		Provider: provider,
		Service:  service,
		Handler:  handler,
	}, nil
}

func newProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.Provider == config.ProviderMock {
		config.WithContext(ctx).Warn("Using mock quiz provider")
		return NewMockProvider(time.Now().UnixNano()), nil
	}
	return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
}
