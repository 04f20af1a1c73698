// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jlmarcelo/studentportal/internal/app/models/dto"
	"github.com/jlmarcelo/studentportal/internal/app/services"
	"github.com/jlmarcelo/studentportal/internal/middleware"
)

// StudentController handles student record and credential operations.
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// Register handles student registration.
// POST /api/students
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleBindingError(err)))
		return
	}

	studentID, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to register student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentID", studentID).Msg("Student registered successfully")
	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:   "Student registered successfully",
		StudentID: studentID,
	})
}

// Login handles student authentication.
// POST /api/students/login
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleBindingError(err)))
		return
	}

	student, err := c.studentService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentID", student.StudentID).Msg("Student logged in successfully")
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Student: dto.NewStudentResponse(student),
	})
}

// List returns all student records, password hashes stripped.
// GET /api/students
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// GetByID returns one student record by student ID.
// GET /api/students/:id
func (c *StudentController) GetByID(ctx *gin.Context) {
	studentID := ctx.Param("id")

	student, err := c.studentService.Get(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// Update replaces fields of a student record by student ID.
// PUT /api/students/:id
func (c *StudentController) Update(ctx *gin.Context) {
	studentID := ctx.Param("id")

	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleBindingError(err)))
		return
	}

	if err := c.studentService.Update(ctx.Request.Context(), studentID, fields); err != nil {
		c.logger.Error().Err(err).Str("studentID", studentID).Msg("Failed to update student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student updated"})
}

// Delete removes a student record by student ID.
// DELETE /api/students/:id
func (c *StudentController) Delete(ctx *gin.Context) {
	studentID := ctx.Param("id")

	if err := c.studentService.Delete(ctx.Request.Context(), studentID); err != nil {
		c.logger.Error().Err(err).Str("studentID", studentID).Msg("Failed to delete student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}
