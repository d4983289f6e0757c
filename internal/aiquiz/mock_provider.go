package aiquiz

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/saulo-duarte/quizgen-lambda/internal/quizparser"
)

const mockFeedback = "Good effort, keep practicing! Review the solutions for the questions you missed and try a few similar problems before the next quiz."

var requestedCount = regexp.MustCompile(`Generate (\d+) multiple-choice questions`)

// mockProvider answers quiz prompts with random arithmetic questions written
// in the same template the real model is asked for, and analysis prompts
// with fixed feedback. It needs no network access.
type mockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockProvider(seed int64) Provider {
	return &mockProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m := requestedCount.FindStringSubmatch(prompt)
	if m == nil {
		return mockFeedback, nil
	}
	count, err := strconv.Atoi(m[1])
	if err != nil || count <= 0 {
		return "", fmt.Errorf("mock provider: bad question count %q", m[1])
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	questions := make([]quizparser.Question, count)
	for i := range questions {
		questions[i] = p.arithmetic()
	}
	return "Here are your practice questions.\n\n" + quizparser.Render(questions), nil
}

func (p *mockProvider) arithmetic() quizparser.Question {
	a, b := p.rng.Intn(50)+1, p.rng.Intn(50)+1
	var (
		symbol string
		answer int
	)
	switch p.rng.Intn(3) {
	case 0:
		symbol, answer = "+", a+b
	case 1:
		symbol, answer = "-", a-b
	default:
		symbol, answer = "x", a*b
	}

	values := []int{answer}
	for len(values) < 4 {
		candidate := answer + p.rng.Intn(21) - 10
		if !slices.Contains(values, candidate) {
			values = append(values, candidate)
		}
	}
	p.rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	options := make([]string, len(values))
	for i, v := range values {
		options[i] = strconv.Itoa(v)
	}

	return quizparser.Question{
		Question:      fmt.Sprintf("What is %d %s %d?", a, symbol, b),
		Options:       options,
		CorrectAnswer: strconv.Itoa(answer),
		Solution:      fmt.Sprintf("%d %s %d = %d.", a, symbol, b, answer),
	}
}
