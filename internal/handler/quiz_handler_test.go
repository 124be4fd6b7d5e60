package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/service"
	"github.com/edustack/edustack-backend/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

// memQuestionStore is an in-memory service.QuestionStore for handler tests.
type memQuestionStore struct {
	questions map[uuid.UUID]*model.Question
}

func newMemQuestionStore(questions ...*model.Question) *memQuestionStore {
	s := &memQuestionStore{questions: make(map[uuid.UUID]*model.Question)}
	for _, q := range questions {
		s.questions[q.ID] = q
	}
	return s
}

func (s *memQuestionStore) Sample(_ context.Context, category string, size int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range s.questions {
		if category != "" && q.Category != category {
			continue
		}
		if len(out) == size {
			break
		}
		out = append(out, *q)
	}
	return out, nil
}

func (s *memQuestionStore) GetByID(_ context.Context, id uuid.UUID) (*model.Question, error) {
	q, ok := s.questions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return q, nil
}

func (s *memQuestionStore) Create(_ context.Context, q *model.Question) error {
	q.ID = uuid.New()
	s.questions[q.ID] = q
	return nil
}

func (s *memQuestionStore) Update(_ context.Context, q *model.Question) error {
	if _, ok := s.questions[q.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.questions[q.ID] = q
	return nil
}

func newQuizRouter(store service.QuestionStore) *gin.Engine {
	svc := service.NewQuizService(store, nil, zerolog.Nop())
	h := NewQuizHandler(svc)

	r := gin.New()
	r.GET("/quiz/questions", h.GetQuestions)
	r.POST("/quiz/submit", h.SubmitQuiz)
	r.POST("/quiz/question", h.AddQuestion)
	r.PUT("/quiz/question/:id", h.UpdateQuestion)
	return r
}

func storedQuestion(answer, category string) *model.Question {
	return &model.Question{
		ID:            uuid.New(),
		Text:          "pick " + answer,
		Options:       []string{answer, "b", "c", "d"},
		CorrectAnswer: answer,
		Category:      category,
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetQuestionsStripsAnswerKey(t *testing.T) {
	r := newQuizRouter(newMemQuestionStore(
		storedQuestion("a1", ""),
		storedQuestion("a2", ""),
	))

	w := doJSON(t, r, http.MethodGet, "/quiz/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                      `json:"success"`
		Count   int                       `json:"count"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
	for _, q := range body.Data {
		assert.NotContains(t, q, "correctAnswer")
	}
}

func TestGetQuestionsRejectsBadSize(t *testing.T) {
	r := newQuizRouter(newMemQuestionStore())

	w := doJSON(t, r, http.MethodGet, "/quiz/questions?size=zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/quiz/questions?size=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitQuizScores(t *testing.T) {
	q1 := storedQuestion("right", "")
	q2 := storedQuestion("also right", "")
	r := newQuizRouter(newMemQuestionStore(q1, q2))

	w := doJSON(t, r, http.MethodPost, "/quiz/submit", []model.Submission{
		{QuestionID: q1.ID.String(), Answer: "right"},
		{QuestionID: q2.ID.String(), Answer: "b"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["totalQuestions"])
	assert.Equal(t, float64(1), body["score"])
	assert.Equal(t, "1 out of 2", body["mark"])
}

func TestSubmitQuizEmptyBody(t *testing.T) {
	r := newQuizRouter(newMemQuestionStore())

	w := doJSON(t, r, http.MethodPost, "/quiz/submit", []model.Submission{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No submissions provided", body["message"])
}

func TestAddQuestionRejectsBadAnswer(t *testing.T) {
	r := newQuizRouter(newMemQuestionStore())

	w := doJSON(t, r, http.MethodPost, "/quiz/question", model.QuestionRequest{
		Text:          "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "e",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.ErrAnswerNotOption.Error(), body["message"])
}

func TestAddQuestionCreated(t *testing.T) {
	store := newMemQuestionStore()
	r := newQuizRouter(store)

	w := doJSON(t, r, http.MethodPost, "/quiz/question", model.QuestionRequest{
		Text:          "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Category:      "go",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.questions, 1)
}

func TestUpdateQuestionNotFound(t *testing.T) {
	r := newQuizRouter(newMemQuestionStore())

	id := uuid.New()
	w := doJSON(t, r, http.MethodPut, "/quiz/question/"+id.String(), model.QuestionRequest{
		Text:          "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, fmt.Sprintf("Question not found with id of %s", id), body["message"])
	assert.NotContains(t, body, "success")
}

func TestUpdateQuestionBadID(t *testing.T) {
	r := newQuizRouter(newMemQuestionStore())

	w := doJSON(t, r, http.MethodPut, "/quiz/question/not-a-uuid", model.QuestionRequest{
		Text:          "q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
