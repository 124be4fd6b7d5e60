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

// CourseHandler handles course CRUD.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// GetCourses godoc
// GET /api/v1/course/getAllCourse
func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	response.List(c, http.StatusOK, len(courses), courses)
}

// GetCourse godoc
// GET /api/v1/course/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Course", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch course")
		return
	}

	response.OK(c, http.StatusOK, course)
}

// CreateCourse godoc
// POST /api/v1/course/createCourse
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}
	req.ApplyDefaults()

	course := courseFromRequest(&req)

	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourse) {
			response.Fail(c, http.StatusBadRequest, "Course already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create course")
		return
	}

	response.OK(c, http.StatusCreated, course)
}

// UpdateCourse godoc
// PUT /api/v1/course/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}
	req.ApplyDefaults()

	course := courseFromRequest(&req)
	course.ID = id

	if err := h.courseService.Update(c.Request.Context(), course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Course", c.Param("id"))
			return
		}
		if errors.Is(err, repository.ErrDuplicateCourse) {
			response.Fail(c, http.StatusBadRequest, "Course already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update course")
		return
	}

	response.OK(c, http.StatusOK, course)
}

// DeleteCourse godoc
// DELETE /api/v1/course/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Course", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete course")
		return
	}

	response.Message(c, http.StatusOK, "Course deleted successfully")
}

func courseFromRequest(req *model.CourseRequest) *model.Course {
	return &model.Course{
		CourseName:    req.CourseName,
		Description:   req.Description,
		Price:         *req.Price,
		Type:          model.CourseType(req.Type),
		Author:        req.Author,
		Category:      req.Category,
		Img:           req.Img,
		VideoID:       req.VideoID,
		CourseContain: req.CourseContain,
	}
}
