package container

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/router"
)

const requestTimeoutSlack = 10 * time.Second

type Container struct {
	Config          *config.Config
	AIQuizContainer *aiquiz.AIQuizContainer
	Router          *chi.Mux
}

// New loads and validates configuration before building anything, so a
// missing API key stops startup instead of failing the first request.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("building quiz container: %w", err)
	}

	r := router.New(router.RouterConfig{
		AIQuizHandler:  aiQuizContainer.Handler,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout + requestTimeoutSlack,
	})

	return &Container{
		Config:          cfg,
		AIQuizContainer: aiQuizContainer,
		Router:          r,
	}, nil
}
