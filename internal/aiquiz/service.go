package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/quizparser"
	"github.com/saulo-duarte/quizgen-lambda/internal/scoring"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRequest       = errors.New("missing subject, chapter, or limit")
	ErrMissingAnalysisInput = errors.New("missing quiz or user answers data for analysis")
	ErrProvider             = errors.New("AI provider call failed")
	ErrNoParsableQuestions  = errors.New("AI generated no parsable questions")
)

// NoQuestionsError carries the raw completion when parsing found nothing.
type NoQuestionsError struct {
	Raw string
}

func (e *NoQuestionsError) Error() string {
	return ErrNoParsableQuestions.Error()
}

func (e *NoQuestionsError) Unwrap() error {
	return ErrNoParsableQuestions
}

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) ([]Question, error)
	// AnalyzeResults always returns the score, even when the feedback call
	// fails.
	AnalyzeResults(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
}

type Options struct {
	DefaultQuestions int
	MaxQuestions     int
	Timeout          time.Duration
}

type service struct {
	provider Provider
	opts     Options
}

func NewService(provider Provider, opts Options) Service {
	return &service{provider: provider, opts: opts}
}

func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) ([]Question, error) {
	count, err := s.questionCount(req)
	if err != nil {
		return nil, err
	}

	generationID := uuid.NewString()
	log := config.WithContext(ctx).WithField("generation_id", generationID)
	log.WithFields(logrus.Fields{
		"subject": req.Subject,
		"chapter": req.Chapter,
		"count":   count,
	}).Info("Requesting quiz from provider")

	raw, err := s.generate(ctx, BuildQuizPrompt(req.Subject, req.Chapter, count))
	if err != nil {
		log.WithError(err).Error("Quiz generation failed")
		return nil, err
	}

	questions, err := quizparser.New(log).Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing quiz: %w", err)
	}
	if len(questions) == 0 {
		log.Warn("Parsing resulted in zero questions")
		return nil, &NoQuestionsError{Raw: raw}
	}

	log.Infof("[AIQUIZ] Parsed %d questions", len(questions))
	return questions, nil
}

func (s *service) AnalyzeResults(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	if len(req.Quiz) == 0 || len(req.UserAnswers) == 0 {
		return nil, ErrMissingAnalysisInput
	}
	log := config.WithContext(ctx)

	report := scoring.Score(req.Quiz, req.UserAnswers)
	resp := &AnalyzeResponse{Score: report.CorrectCount}

	prompt, err := BuildAnalysisPrompt(report)
	if err != nil {
		return resp, err
	}

	feedback, err := s.generate(ctx, prompt)
	if err != nil {
		log.WithError(err).WithField("score", report.CorrectCount).Error("Result analysis failed")
		return resp, err
	}

	resp.OverallFeedback = strings.TrimSpace(feedback)
	return resp, nil
}

func (s *service) questionCount(req QuizRequest) (int, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Chapter) == "" {
		return 0, ErrInvalidRequest
	}
	if req.Limit == nil {
		return s.opts.DefaultQuestions, nil
	}
	if *req.Limit <= 0 {
		return 0, ErrInvalidRequest
	}
	return min(*req.Limit, s.opts.MaxQuestions), nil
}

// generate makes exactly one provider call bounded by the configured timeout.
func (s *service) generate(ctx context.Context, prompt string) (string, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	return raw, nil
}
