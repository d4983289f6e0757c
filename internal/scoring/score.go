// Package scoring compares submitted answers with generated questions.
package scoring

import "github.com/saulo-duarte/quizgen-lambda/internal/quizparser"

type Answer struct {
	QuestionID     int    `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
}

// Miss describes a wrongly answered question. Field names match what the
// feedback prompt shows the model.
type Miss struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Solution      string `json:"provided_solution"`
}

type Report struct {
	CorrectCount int    `json:"correctCount"`
	Total        int    `json:"total"`
	Missed       []Miss `json:"missed"`
}

// Score looks each answer up by question id. Answers for unknown ids are
// ignored and answers are compared by exact string equality.
func Score(questions []quizparser.Question, answers []Answer) Report {
	byID := make(map[int]quizparser.Question, len(questions))
	for _, q := range questions {
		if _, ok := byID[q.ID]; !ok {
			byID[q.ID] = q
		}
	}

	report := Report{Total: len(questions), Missed: []Miss{}}
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		if a.SelectedAnswer == q.CorrectAnswer {
			report.CorrectCount++
			continue
		}
		report.Missed = append(report.Missed, Miss{
			Question:      q.Question,
			YourAnswer:    a.SelectedAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Solution:      q.Solution,
		})
	}
	return report
}
