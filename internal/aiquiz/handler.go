package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz godoc
// @Summary      Generate a multiple-choice quiz
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request  body      QuizRequest  true  "Subject, chapter and optional question limit"
// @Success      200      {object}  QuizResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /generate_quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz generation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		var noQuestions *NoQuestionsError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &noQuestions):
			config.JSON(w, http.StatusInternalServerError, map[string]string{
				"error":        "AI generated no parsable questions. Please try again.",
				"raw_response": noQuestions.Raw,
			})
		default:
			log.WithError(err).Error("Failed to generate quiz")
			config.Error(w, http.StatusInternalServerError, "Failed to generate quiz from AI: "+err.Error())
		}
		return
	}

	config.JSON(w, http.StatusOK, QuizResponse{Questions: questions})
}

// AnalyzeResults godoc
// @Summary      Score submitted answers and get feedback
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request  body      AnalyzeRequest  true  "Generated quiz and the user's answers"
// @Success      200      {object}  AnalyzeResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]interface{}
// @Router       /analyze_results [post]
func (h *Handler) AnalyzeResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for result analysis")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.AnalyzeResults(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingAnalysisInput) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to analyze results")
		body := map[string]any{"error": "Failed to get AI analysis: " + err.Error()}
		if resp != nil {
			body["score"] = resp.Score
		}
		config.JSON(w, http.StatusInternalServerError, body)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
