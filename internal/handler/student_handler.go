package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
	"github.com/edustack/edustack-backend/internal/response"
	"github.com/edustack/edustack-backend/internal/service"
	"github.com/edustack/edustack-backend/internal/validator"
)

// StudentHandler handles student listing, search, update, and deletion.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// GetStudents godoc
// GET /api/v1/auth/getAllStudents
func (h *StudentHandler) GetStudents(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch students")
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.List(c, http.StatusOK, len(students), students)
}

// GetStudent godoc
// GET /api/v1/auth/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Student", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch student")
		return
	}

	response.OK(c, http.StatusOK, student)
}

// SearchByBatch godoc
// GET /api/v1/auth/getStudentsByBatch/:batchId
func (h *StudentHandler) SearchByBatch(c *gin.Context) {
	batchID, ok := parseIDParam(c, "batchId")
	if !ok {
		return
	}

	students, err := h.studentService.ListByBatch(c.Request.Context(), batchID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch students")
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.List(c, http.StatusOK, len(students), students)
}

// SearchByCourse godoc
// GET /api/v1/auth/getStudentsByCourse/:courseId
func (h *StudentHandler) SearchByCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	students, err := h.studentService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch students")
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.List(c, http.StatusOK, len(students), students)
}

// UpdateStudent godoc
// PUT /api/v1/auth/updateStudent/:id
// Updates account fields. The stored password hash is replaced only when a
// new password is supplied.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	student := &model.Student{
		ID:        id,
		Username:  req.Username,
		Role:      model.Role(req.Role),
		Image:     req.Image,
		BatchID:   req.BatchID,
		CourseIDs: req.CourseIDs,
	}

	if err := h.studentService.Update(c.Request.Context(), student, req.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Student", c.Param("id"))
			return
		}
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Fail(c, http.StatusBadRequest, "Student already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update student")
		return
	}

	updated, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch student")
		return
	}

	c.JSON(http.StatusOK, response.Envelope{
		Success: true,
		Message: "Student updated successfully",
		Data:    updated,
	})
}

// DeleteStudent godoc
// DELETE /api/v1/auth/deleteStudent/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Student", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete student")
		return
	}

	response.Message(c, http.StatusOK, "Student deleted successfully")
}
