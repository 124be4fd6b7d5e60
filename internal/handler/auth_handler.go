package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/edustack/edustack-backend/internal/middleware"
	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
	"github.com/edustack/edustack-backend/internal/response"
	"github.com/edustack/edustack-backend/internal/service"
	"github.com/edustack/edustack-backend/internal/validator"
)

// AuthHandler handles registration, login, and the current-user profile.
type AuthHandler struct {
	authService    *service.AuthService
	studentService *service.StudentService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, studentService *service.StudentService) *AuthHandler {
	return &AuthHandler{authService: authService, studentService: studentService}
}

// Register godoc
// POST /api/v1/auth/register
// Creates a new student account. The raw password is hashed before storage
// and never logged.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	student := &model.Student{
		Username: req.Username,
		Role:     model.Role(req.Role),
	}

	if err := h.studentService.Register(c.Request.Context(), student, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Fail(c, http.StatusBadRequest, "Student already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to register student")
		return
	}

	response.Message(c, http.StatusOK, "Student created successfully")
}

// Login godoc
// POST /api/v1/auth/login
// Verifies credentials and returns a session token, also set as an
// http-only cookie. Unknown username and wrong password are
// indistinguishable in the response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, "Please provide a username and password")
		return
	}

	student, err := h.studentService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch student")
		return
	}

	if err := h.authService.CheckPassword(student.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(student)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.SetCookie(
		middleware.AuthCookieName,
		token,
		h.authService.CookieMaxAge(),
		"/",
		"",
		h.authService.CookieSecure(),
		true, // http-only
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// GetMe godoc
// GET /api/v1/auth/getMe
// Returns the profile of the currently authenticated student.
func (h *AuthHandler) GetMe(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.NotFound(c, "Student", claims.UserID.String())
		return
	}

	response.OK(c, http.StatusOK, student)
}
