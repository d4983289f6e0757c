package quizparser

import (
	"regexp"
	"strings"
)

var (
	// "## Question 3: text" at the start of a line, optionally bold:
	// "## **Question 3:** text" or "## **Question 3: text**".
	markdownHeader = regexp.MustCompile(`(?i)^[ \t]*#{1,6}[ \t]*(\*\*|__)?[ \t]*question[ \t]*\d+[ \t]*:[ \t]*(\*\*|__)?[ \t]*`)
	// "Question 3:" anywhere in the text.
	bareHeader = regexp.MustCompile(`(?i)question[ \t]*\d+[ \t]*:[ \t]*`)
)

// block is one question's worth of text with the header already removed.
type block struct {
	header string
	body   string
}

func (b block) raw() string {
	return b.header + b.body
}

// segment splits text into blocks on markdown question headers, falling back
// to bare "Question N:" markers when no markdown header is present.
func segment(text string) (blocks []block, fallback bool) {
	if blocks = segmentMarkdown(text); len(blocks) > 0 {
		return blocks, false
	}
	return segmentBare(text), true
}

func segmentMarkdown(text string) []block {
	var (
		blocks  []block
		current *block
		body    []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.body = strings.Join(body, "\n")
		blocks = append(blocks, *current)
	}

	for _, line := range splitLines(text) {
		if m := markdownHeader.FindStringSubmatchIndex(line); m != nil {
			flush()
			current = &block{header: line[:m[1]]}
			body = []string{headerRemainder(line, m)}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return blocks
}

// headerRemainder returns the question text after the header. A bold marker
// opened before "Question" and left unclosed by the header is dropped from the
// end of the line; a marker after the colon with none before it belongs to
// the question text.
func headerRemainder(line string, m []int) string {
	opened, closed := m[2] >= 0, m[4] >= 0
	switch {
	case opened && !closed:
		return strings.TrimSuffix(strings.TrimRight(line[m[1]:], " \t"), line[m[2]:m[3]])
	case closed && !opened:
		return line[m[4]:]
	}
	return line[m[1]:]
}

func segmentBare(text string) []block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	locs := bareHeader.FindAllStringIndex(text, -1)
	blocks := make([]block, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, block{
			header: text[loc[0]:loc[1]],
			body:   text[loc[1]:end],
		})
	}
	return blocks
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
