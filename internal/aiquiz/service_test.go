package aiquiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/scoring"
)

const validCompletion = `## Question 1: What is the SI unit of force?
Options:
A. Joule
B. Newton
C. Watt
D. Pascal
Correct Answer: B. Newton
Solution: Force is measured in newtons.
`

type fakeProvider struct {
	response string
	err      error
	prompts  []string
	deadline bool
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

var testOptions = aiquiz.Options{DefaultQuestions: 10, MaxQuestions: 20, Timeout: time.Second}

func intPtr(n int) *int { return &n }

func TestGenerateQuiz(t *testing.T) {
	provider := &fakeProvider{response: validCompletion}
	svc := aiquiz.NewService(provider, testOptions)

	questions, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{
		Subject: "Physics",
		Chapter: "Laws of Motion",
		Limit:   intPtr(5),
	})
	require.NoError(t, err)

	require.Len(t, questions, 1)
	assert.Equal(t, "Newton", questions[0].CorrectAnswer)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "Generate 5 multiple-choice questions")
	assert.Contains(t, provider.prompts[0], `"Laws of Motion" in "Physics"`)
	assert.True(t, provider.deadline)
}

func TestGenerateQuizQuestionCount(t *testing.T) {
	tests := []struct {
		name  string
		limit *int
		want  string
	}{
		{"default", nil, "Generate 10 multiple-choice"},
		{"clamped", intPtr(500), "Generate 20 multiple-choice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{response: validCompletion}
			svc := aiquiz.NewService(provider, testOptions)

			_, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{Subject: "s", Chapter: "c", Limit: tt.limit})
			require.NoError(t, err)
			assert.Contains(t, provider.prompts[0], tt.want)
		})
	}
}

func TestGenerateQuizInvalidRequest(t *testing.T) {
	tests := map[string]aiquiz.QuizRequest{
		"no subject": {Chapter: "c"},
		"no chapter": {Subject: "s"},
		"zero limit": {Subject: "s", Chapter: "c", Limit: intPtr(0)},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			provider := &fakeProvider{response: validCompletion}
			svc := aiquiz.NewService(provider, testOptions)

			_, err := svc.GenerateQuiz(context.Background(), req)
			assert.ErrorIs(t, err, aiquiz.ErrInvalidRequest)
			assert.Empty(t, provider.prompts)
		})
	}
}

func TestGenerateQuizNoParsableQuestions(t *testing.T) {
	svc := aiquiz.NewService(&fakeProvider{response: "Sorry, I can't do that."}, testOptions)

	_, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{Subject: "s", Chapter: "c"})

	require.ErrorIs(t, err, aiquiz.ErrNoParsableQuestions)
	assert.NotErrorIs(t, err, aiquiz.ErrProvider)
	var noQuestions *aiquiz.NoQuestionsError
	require.ErrorAs(t, err, &noQuestions)
	assert.Equal(t, "Sorry, I can't do that.", noQuestions.Raw)
}

func TestGenerateQuizProviderError(t *testing.T) {
	backendErr := errors.New("connection reset")
	svc := aiquiz.NewService(&fakeProvider{err: backendErr}, testOptions)

	_, err := svc.GenerateQuiz(context.Background(), aiquiz.QuizRequest{Subject: "s", Chapter: "c"})

	assert.ErrorIs(t, err, aiquiz.ErrProvider)
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, aiquiz.ErrNoParsableQuestions)
}

func TestAnalyzeResults(t *testing.T) {
	provider := &fakeProvider{response: "  Keep practicing Newton's laws.  \n"}
	svc := aiquiz.NewService(provider, testOptions)

	resp, err := svc.AnalyzeResults(context.Background(), aiquiz.AnalyzeRequest{
		Quiz: []aiquiz.Question{
			{ID: 1, Question: "Unit of force?", Options: []string{"Joule", "Newton"}, CorrectAnswer: "Newton", Solution: "N"},
			{ID: 2, Question: "Unit of work?", Options: []string{"Joule", "Newton"}, CorrectAnswer: "Joule", Solution: "J"},
		},
		UserAnswers: []scoring.Answer{
			{QuestionID: 1, SelectedAnswer: "Newton"},
			{QuestionID: 2, SelectedAnswer: "Newton"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, "Keep practicing Newton's laws.", resp.OverallFeedback)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "They answered 1 out of 2 questions correctly")
	assert.Contains(t, provider.prompts[0], `"your_answer": "Newton"`)
	assert.Contains(t, provider.prompts[0], `"correct_answer": "Joule"`)
}

func TestAnalyzeResultsMissingInput(t *testing.T) {
	svc := aiquiz.NewService(&fakeProvider{}, testOptions)

	_, err := svc.AnalyzeResults(context.Background(), aiquiz.AnalyzeRequest{})
	assert.ErrorIs(t, err, aiquiz.ErrMissingAnalysisInput)
}

func TestAnalyzeResultsProviderErrorKeepsScore(t *testing.T) {
	svc := aiquiz.NewService(&fakeProvider{err: errors.New("quota exceeded")}, testOptions)

	resp, err := svc.AnalyzeResults(context.Background(), aiquiz.AnalyzeRequest{
		Quiz:        []aiquiz.Question{{ID: 1, CorrectAnswer: "a"}},
		UserAnswers: []scoring.Answer{{QuestionID: 1, SelectedAnswer: "a"}},
	})

	assert.ErrorIs(t, err, aiquiz.ErrProvider)
	require.NotNil(t, resp)
	assert.Equal(t, 1, resp.Score)
}
