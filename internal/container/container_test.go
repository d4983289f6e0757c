package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/container"
)

func TestNewWithMockProvider(t *testing.T) {
	t.Setenv("QUIZ_PROVIDER", "mock")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	c, err := container.New(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/generate_quiz", strings.NewReader(`{"subject":"Maths","chapter":"Sums","limit":2}`))
	rec := httptest.NewRecorder()
	c.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("QUIZ_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := container.New(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
