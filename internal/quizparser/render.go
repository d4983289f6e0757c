package quizparser

import (
	"fmt"
	"strings"
)

var labels = []string{"A", "B", "C", "D"}

// Render writes questions back out in the template Parse reads, numbering
// headers by position. Options past the fourth are written without a label
// because only A-D labels are stripped on the way back in.
func Render(questions []Question) string {
	var sb strings.Builder
	for i, q := range questions {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## Question %d: %s\n", i+1, q.Question)
		sb.WriteString("Options:\n")
		answer := q.CorrectAnswer
		for j, opt := range q.Options {
			if j < len(labels) {
				fmt.Fprintf(&sb, "%s. %s\n", labels[j], opt)
				if opt == q.CorrectAnswer {
					answer = labels[j] + ". " + opt
				}
				continue
			}
			sb.WriteString(opt + "\n")
		}
		fmt.Fprintf(&sb, "Correct Answer: %s\n", answer)
		fmt.Fprintf(&sb, "Solution: %s\n", q.Solution)
	}
	return sb.String()
}
