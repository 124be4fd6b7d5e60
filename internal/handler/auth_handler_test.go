package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edustack/edustack-backend/internal/config"
	"github.com/edustack/edustack-backend/internal/middleware"
	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
	"github.com/edustack/edustack-backend/internal/service"
)

// memStudentStore is an in-memory service.StudentStore. Create enforces the
// unique-username rule the way the real store's unique index does. lookupErr,
// when set, is returned from GetByUsername to simulate store failures.
type memStudentStore struct {
	students  map[uuid.UUID]*model.Student
	lookupErr error
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{students: make(map[uuid.UUID]*model.Student)}
}

func (s *memStudentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return st, nil
}

func (s *memStudentStore) GetByUsername(_ context.Context, username string) (*model.Student, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	for _, st := range s.students {
		if st.Username == username {
			return st, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *memStudentStore) List(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for _, st := range s.students {
		out = append(out, *st)
	}
	return out, nil
}

func (s *memStudentStore) ListByBatch(_ context.Context, _ uuid.UUID) ([]model.Student, error) {
	return nil, nil
}

func (s *memStudentStore) ListByCourse(_ context.Context, _ uuid.UUID) ([]model.Student, error) {
	return nil, nil
}

func (s *memStudentStore) Create(_ context.Context, st *model.Student) error {
	for _, existing := range s.students {
		if existing.Username == st.Username {
			return repository.ErrDuplicateUsername
		}
	}
	st.ID = uuid.New()
	s.students[st.ID] = st
	return nil
}

func (s *memStudentStore) Update(_ context.Context, st *model.Student) error {
	if _, ok := s.students[st.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.students[st.ID] = st
	return nil
}

func (s *memStudentStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	st, ok := s.students[id]
	if !ok {
		return pgx.ErrNoRows
	}
	st.PasswordHash = hash
	return nil
}

func (s *memStudentStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.students[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.students, id)
	return nil
}

func newAuthTestRouter(store service.StudentStore) *gin.Engine {
	authService := service.NewAuthService(&config.Config{
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		CookieExpireDays: 30,
		BcryptCost:       bcrypt.MinCost,
	})
	studentService := service.NewStudentService(store, authService)
	h := NewAuthHandler(authService, studentService)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/getMe", middleware.RequireAuth(authService), h.GetMe)
	return r
}

func TestRegisterThenLogin(t *testing.T) {
	r := newAuthTestRouter(newMemStudentStore())

	w := doJSON(t, r, http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Student created successfully")

	w = doJSON(t, r, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	var found bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			found = true
			assert.True(t, cookie.HttpOnly)
			assert.NotEmpty(t, cookie.Value)
		}
	}
	assert.True(t, found, "login must set the token cookie")
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	r := newAuthTestRouter(newMemStudentStore())

	payload := model.RegisterRequest{Username: "alice", Password: "secret123"}

	w := doJSON(t, r, http.MethodPost, "/auth/register", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Student already exists")
}

func TestLoginMissingFields(t *testing.T) {
	r := newAuthTestRouter(newMemStudentStore())

	w := doJSON(t, r, http.MethodPost, "/auth/login", model.LoginRequest{Username: "alice"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide a username and password")
}

// Wrong password and unknown username must be indistinguishable in the
// response, both status and body.
func TestLoginFailureParity(t *testing.T) {
	store := newMemStudentStore()
	r := newAuthTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "alice",
		Password: "not-the-password",
	})
	unknownUser := doJSON(t, r, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLoginStoreFailureIsNotUnauthorized(t *testing.T) {
	store := newMemStudentStore()
	store.lookupErr = errors.New("connection refused")
	r := newAuthTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "Invalid credentials")
}

func TestGetMeReturnsCurrentStudent(t *testing.T) {
	store := newMemStudentStore()
	r := newAuthTestRouter(store)

	w := doJSON(t, r, http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var token string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			token = cookie.Value
		}
	}
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/auth/getMe", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)
	assert.NotContains(t, rec.Body.String(), "secret123")
}
