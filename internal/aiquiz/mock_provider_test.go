package aiquiz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/quizparser"
)

func TestMockProviderQuizParses(t *testing.T) {
	provider := aiquiz.NewMockProvider(42)

	raw, err := provider.Generate(context.Background(), aiquiz.BuildQuizPrompt("Maths", "Arithmetic", 6))
	require.NoError(t, err)

	questions := quizparser.New(nil).ParseText(raw)
	require.Len(t, questions, 6)
	for i, q := range questions {
		assert.Equal(t, i+1, q.ID)
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)
		assert.NotEmpty(t, q.Solution)
	}
}

func TestMockProviderFeedback(t *testing.T) {
	provider := aiquiz.NewMockProvider(1)

	feedback, err := provider.Generate(context.Background(), "A NEET student just completed a quiz.")
	require.NoError(t, err)
	assert.NotEmpty(t, feedback)
}

func TestMockProviderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := aiquiz.NewMockProvider(1).Generate(ctx, aiquiz.BuildQuizPrompt("s", "c", 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockProviderEndToEnd(t *testing.T) {
	svc := aiquiz.NewService(aiquiz.NewMockProvider(7), testOptions)

	questions, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{Subject: "Maths", Chapter: "Arithmetic", Limit: intPtr(3)})
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}
