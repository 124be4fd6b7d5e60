package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/response"
	"github.com/edustack/edustack-backend/internal/service"
	"github.com/edustack/edustack-backend/internal/validator"
)

// QuizHandler serves question sampling, answer scoring, and question
// management.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GetQuestions godoc
// GET /api/v1/quiz/questions?category=&size=
// Returns a random sample of questions with answer keys stripped.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	category := c.Query("category")

	size := service.DefaultSampleSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Fail(c, http.StatusBadRequest, "Invalid size parameter")
			return
		}
		size = n
	}

	questions, err := h.quizService.SampleQuestions(c.Request.Context(), category, size)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}

	response.List(c, http.StatusOK, len(questions), questions)
}

// SubmitQuiz godoc
// POST /api/v1/quiz/submit
// Scores a batch of submitted answers against stored correct answers.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var submissions []model.Submission
	if err := c.ShouldBindJSON(&submissions); err != nil {
		response.Fail(c, http.StatusBadRequest, "No submissions provided")
		return
	}

	result, err := h.quizService.ScoreSubmissions(c.Request.Context(), submissions)
	if err != nil {
		if errors.Is(err, service.ErrNoSubmissions) {
			response.Fail(c, http.StatusBadRequest, "No submissions provided")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to score submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"totalQuestions": result.TotalQuestions,
		"score":          result.Score,
		"mark":           result.Mark,
	})
}

// AddQuestion godoc
// POST /api/v1/quiz/question
// Creates a new quiz question after validating the answer invariant.
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	var req model.QuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	question, err := h.quizService.AddQuestion(c.Request.Context(), &req)
	if err != nil {
		if isInvariantError(err) {
			response.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create question")
		return
	}

	response.OK(c, http.StatusCreated, question)
}

// UpdateQuestion godoc
// PUT /api/v1/quiz/question/:id
// Replaces all mutable fields of an existing question.
func (h *QuizHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.QuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	question, err := h.quizService.UpdateQuestion(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			response.NotFound(c, "Question", c.Param("id"))
			return
		}
		if isInvariantError(err) {
			response.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update question")
		return
	}

	response.OK(c, http.StatusOK, question)
}

// isInvariantError reports whether err is a question invariant violation.
func isInvariantError(err error) bool {
	return errors.Is(err, model.ErrOptionsCount) ||
		errors.Is(err, model.ErrOptionsDuplicate) ||
		errors.Is(err, model.ErrAnswerNotOption)
}
