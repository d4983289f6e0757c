package aiquiz

import (
	"github.com/saulo-duarte/quizgen-lambda/internal/quizparser"
	"github.com/saulo-duarte/quizgen-lambda/internal/scoring"
)

type Question = quizparser.Question

type QuizRequest struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	// Limit is optional; nil means the configured default.
	Limit *int `json:"limit"`
}

type QuizResponse struct {
	Questions []Question `json:"questions"`
}

type AnalyzeRequest struct {
	Quiz        []Question       `json:"quiz"`
	UserAnswers []scoring.Answer `json:"userAnswers"`
}

type AnalyzeResponse struct {
	OverallFeedback string `json:"overallFeedback"`
	Score           int    `json:"score"`
}
