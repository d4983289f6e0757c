package quizparser

import (
	"regexp"
	"strings"
)

type state int

const (
	stateHeader state = iota
	stateQuestionText
	stateOptions
	stateCorrectAnswer
	stateSolution
)

func (s state) String() string {
	switch s {
	case stateHeader:
		return "header"
	case stateQuestionText:
		return "question text"
	case stateOptions:
		return "options"
	case stateCorrectAnswer:
		return "correct answer"
	case stateSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Anchors may be wrapped in markdown bold, e.g. "**Correct Answer:** B".
var anchors = map[state]*regexp.Regexp{
	stateOptions:       anchorPattern(`options`),
	stateCorrectAnswer: anchorPattern(`correct[ \t]+answer`),
	stateSolution:      anchorPattern(`solution`),
}

// A marker after the colon is only consumed when the keyword opened with one;
// otherwise it belongs to the field text, e.g. "Correct Answer: **B. y**".
func anchorPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^[ \t]*(?:(?:\*\*|__)[ \t]*` + keyword + `[ \t]*(?:\*\*|__)?[ \t]*:[ \t]*(?:\*\*|__)?|` + keyword + `[ \t]*:)[ \t]*`)
}

// fields holds the raw text captured for each state of one block.
type fields struct {
	question      []string
	options       []string
	correctAnswer []string
	solution      []string
	reached       state
}

// extract walks the block body line by line. Each anchor is only recognised
// while the machine is in the state directly before it, so fields must appear
// in order: question text, options, correct answer, solution.
func extract(body string) fields {
	f := fields{reached: stateQuestionText}
	for _, line := range splitLines(body) {
		if next, ok := nextState(f.reached); ok {
			if loc := anchors[next].FindStringIndex(line); loc != nil {
				f.reached = next
				line = line[loc[1]:]
			}
		}
		f.append(line)
	}
	return f
}

func nextState(s state) (state, bool) {
	if s >= stateQuestionText && s < stateSolution {
		return s + 1, true
	}
	return s, false
}

func (f *fields) append(line string) {
	switch f.reached {
	case stateQuestionText:
		f.question = append(f.question, line)
	case stateOptions:
		f.options = append(f.options, line)
	case stateCorrectAnswer:
		f.correctAnswer = append(f.correctAnswer, line)
	case stateSolution:
		f.solution = append(f.solution, line)
	}
}

// missing reports the first field that is absent or blank.
func (f fields) missing(options []string) (state, bool) {
	switch {
	case f.reached < stateOptions:
		return stateOptions, true
	case f.reached < stateCorrectAnswer:
		return stateCorrectAnswer, true
	case f.reached < stateSolution:
		return stateSolution, true
	case f.questionText() == "":
		return stateQuestionText, true
	case len(options) == 0:
		return stateOptions, true
	case joinTrim(f.correctAnswer) == "":
		return stateCorrectAnswer, true
	case joinTrim(f.solution) == "":
		return stateSolution, true
	}
	return stateHeader, false
}

func (f fields) questionText() string {
	return unbold(joinTrim(f.question))
}

func joinTrim(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
