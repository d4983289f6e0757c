package quizparser

import "errors"

// ErrInvalidInput is returned when Parse receives something other than a string.
var ErrInvalidInput = errors.New("quizparser: invalid input")

type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Solution      string   `json:"solution"`
}
