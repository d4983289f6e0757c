package aiquiz

import (
	"encoding/json"
	"fmt"

	"github.com/saulo-duarte/quizgen-lambda/internal/scoring"
)

const quizPromptTemplate = `
Generate %[1]d multiple-choice questions for NEET students on the topic of "%[2]s" in "%[3]s".
Each question should have exactly 4 options (A, B, C, D).
For each question, also provide the correct answer and a detailed explanation (solution).

Format the output strictly as follows:

## Question 1: [Question text]
Options:
A. [Option A text]
B. [Option B text]
C. [Option C text]
D. [Option D text]
Correct Answer: [Exact text of the correct option, including potential leading identifier if present in options]
Solution: [Detailed explanation for the correct answer and why other options are wrong]

## Question 2: [Question text]
Options:
A. [Option A text]
B. [Option B text]
C. [Option C text]
D. [Option D text]
Correct Answer: [Exact text of the correct option, including potential leading identifier if present in options]
Solution: [Detailed explanation]

... and so on for %[1]d questions.
Ensure the "Correct Answer" exactly matches one of the "Options" provided for that question.
`

const analysisPromptTemplate = `
A NEET student just completed a quiz. They answered %d out of %d questions correctly.

Here are the details of the questions they answered incorrectly, along with the correct answers and solutions:
%s

Based on this information, provide:
1. An overall feedback message to the student about their performance (e.g., "Good effort, keep practicing!", "You have a strong foundation but need to revise X").
2. Suggest 2-3 specific sub-topics or concepts they should focus on for improvement, directly related to their wrong answers.
3. Encourage them and suggest practical ways to practice effectively (e.g., "Review concepts in your textbook," "Try solving similar problems").
`

func BuildQuizPrompt(subject, chapter string, count int) string {
	return fmt.Sprintf(quizPromptTemplate, count, chapter, subject)
}

func BuildAnalysisPrompt(report scoring.Report) (string, error) {
	missed, err := json.MarshalIndent(report.Missed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding missed questions: %w", err)
	}
	return fmt.Sprintf(analysisPromptTemplate, report.CorrectCount, report.Total, missed), nil
}
