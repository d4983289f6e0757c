package quizparser

import (
	"regexp"
	"strings"
)

var label = regexp.MustCompile(`(?i)^[a-d]\.\s*`)

func stripLabel(s string) string {
	return strings.TrimSpace(label.ReplaceAllString(unbold(s), ""))
}

// unbold removes one markdown bold pair wrapping the whole string.
func unbold(s string) string {
	s = strings.TrimSpace(s)
	for _, marker := range []string{"**", "__"} {
		if len(s) > 2*len(marker) && strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker) {
			return strings.TrimSpace(s[len(marker) : len(s)-len(marker)])
		}
	}
	return s
}

// normalizeOptions strips labels and drops blank and duplicate entries,
// keeping first-seen order.
func normalizeOptions(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		opt := stripLabel(line)
		if opt == "" {
			continue
		}
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		out = append(out, opt)
	}
	return out
}

// canonicalAnswer returns the option that exactly matches the label-stripped
// answer, or the stripped answer itself when nothing matches. No fuzzy or
// letter-only matching is attempted.
func canonicalAnswer(answer string, options []string) string {
	cleaned := stripLabel(answer)
	for _, opt := range options {
		if strings.TrimSpace(opt) == cleaned {
			return opt
		}
	}
	return cleaned
}
