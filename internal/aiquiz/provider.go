package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"google.golang.org/genai"
)

// Provider sends one prompt to a text generation backend and returns the raw
// completion.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return client, nil
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := NewGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("generating content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)

	if strings.TrimSpace(raw) == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}

type ModelInfo struct {
	Name        string
	DisplayName string
}

// ListContentModels returns the models that support generateContent.
func ListContentModels(ctx context.Context, client *genai.Client) ([]ModelInfo, error) {
	var models []ModelInfo
	for m, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("listing models: %w", err)
		}
		if !slices.Contains(m.SupportedActions, "generateContent") {
			continue
		}
		models = append(models, ModelInfo{Name: m.Name, DisplayName: m.DisplayName})
	}
	return models, nil
}
