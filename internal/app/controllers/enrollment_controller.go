package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/models/dto"
	"github.com/skytech/srms/internal/app/services"
	"github.com/skytech/srms/internal/middleware"
)

// EnrollmentController handles enrollment-related endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a student in a course
// @Summary Create a new enrollment
// @Description Enrolls a student in a course; both must exist and the term tuple must be unused
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body models.Enrollment true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled for this term"
// @Failure 422 {object} dto.ErrorResponse "Referenced student or course does not exist"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}
	enrollment.ID = 0

	saved, err := c.enrollmentService.Save(ctx, &enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(saved))
}

// UpdateEnrollment handles a full-record enrollment update keyed by id
// @Summary Update an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body models.Enrollment true "Updated enrollment information"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment updated"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid enrollment ID")
	if !ok {
		return
	}

	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}
	enrollment.ID = id

	saved, err := c.enrollmentService.Save(ctx, &enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(saved))
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment retrieved"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid enrollment ID")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if enrollment == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// GetAllEnrollments retrieves all enrollments, most recent first
// @Summary Get all enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentsByStudent retrieves a student's enrollments
// @Summary List a student's enrollments
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved"
// @Router /enrollments/student/{studentId} [get]
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "Invalid student ID")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentsByCourse retrieves a course's enrollments
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved"
// @Router /enrollments/course/{courseId} [get]
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId", "Invalid course ID")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// UpdateGrade records a grade on an enrollment
// @Summary Update an enrollment's grade
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateGradeRequest true "Grade"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Grade updated"
// @Failure 400 {object} dto.ErrorResponse "Grade outside the vocabulary"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/grade [patch]
func (c *EnrollmentController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid enrollment ID")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	enrollment, err := c.enrollmentService.UpdateGrade(ctx, id, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// DeleteEnrollment deletes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse "Enrollment deleted"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid enrollment ID")
	if !ok {
		return
	}

	if err := c.enrollmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "Enrollment deleted"}))
}
