// Package quizparser turns a free-text multiple-choice quiz, as written by a
// language model, into structured questions.
//
// Text is processed in two phases. Segmentation finds question blocks using
// "## Question N:" headers, or bare "Question N:" markers when no markdown
// header is present. Extraction then walks each block through the question
// text, options, correct answer and solution sections. Blocks missing any
// section are logged and skipped; they never fail the whole parse.
package quizparser

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Parser struct {
	log logrus.FieldLogger
}

// New returns a Parser that reports skipped blocks to log. A nil log uses the
// logrus standard logger.
func New(log logrus.FieldLogger) *Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{log: log}
}

// Parse rejects anything that is not a string with ErrInvalidInput; no
// conversion is attempted.
func (p *Parser) Parse(raw any) ([]Question, error) {
	text, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidInput, raw)
	}
	return p.ParseText(text), nil
}

// ParseText never fails; an empty result means no block was usable.
func (p *Parser) ParseText(text string) []Question {
	blocks, fallback := segment(text)
	if fallback && len(blocks) > 0 {
		p.log.WithField("blocks", len(blocks)).Info("no markdown question headers found, used bare markers")
	}

	questions := make([]Question, 0, len(blocks))
	for _, b := range blocks {
		q, ok := p.assemble(b)
		if !ok {
			continue
		}
		q.ID = len(questions) + 1
		questions = append(questions, q)
	}
	return questions
}

func (p *Parser) assemble(b block) (Question, bool) {
	f := extract(b.body)
	options := normalizeOptions(f.options)

	if field, missing := f.missing(options); missing {
		p.log.WithFields(logrus.Fields{
			"missing": field.String(),
			"block":   b.raw(),
		}).Warn("skipping unparsable question block")
		return Question{}, false
	}

	return Question{
		Question:      f.questionText(),
		Options:       options,
		CorrectAnswer: canonicalAnswer(joinTrim(f.correctAnswer), options),
		Solution:      joinTrim(f.solution),
	}, true
}

var defaultParser = New(nil)

// Parse runs the package default parser, which logs to the logrus standard
// logger.
func Parse(raw any) ([]Question, error) {
	return defaultParser.Parse(raw)
}
