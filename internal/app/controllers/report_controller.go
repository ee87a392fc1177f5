package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skytech/srms/internal/app/models/dto"
	"github.com/skytech/srms/internal/app/services"
	"github.com/skytech/srms/internal/middleware"
)

// ReportController handles report endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetTranscript renders a student transcript
// @Summary Get a student transcript
// @Tags reports
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse} "Transcript generated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /reports/transcript/{studentId} [get]
func (c *ReportController) GetTranscript(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "Invalid student ID")
	if !ok {
		return
	}

	transcript, err := c.reportService.GenerateTranscript(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ReportResponse{Report: transcript}))
}

// GetCourseRoster renders a course roster
// @Summary Get a course roster
// @Tags reports
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=services.CourseRoster} "Roster generated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /reports/roster/{courseId} [get]
func (c *ReportController) GetCourseRoster(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId", "Invalid course ID")
	if !ok {
		return
	}

	roster, err := c.reportService.GenerateCourseRoster(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(roster))
}

// GetSummary renders an enrollment summary, optionally filtered
// @Summary Get an enrollment summary
// @Tags reports
// @Produce json
// @Param semester query string false "Semester filter"
// @Param academicYear query string false "Academic year filter"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse} "Summary generated"
// @Router /reports/summary [get]
func (c *ReportController) GetSummary(ctx *gin.Context) {
	semester := ctx.Query("semester")
	academicYear := ctx.Query("academicYear")

	summary, err := c.reportService.GenerateSummary(ctx, semester, academicYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ReportResponse{Report: summary}))
}

// GetStatistics returns record counts
// @Summary Get record statistics
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.Statistics} "Statistics retrieved"
// @Router /reports/statistics [get]
func (c *ReportController) GetStatistics(ctx *gin.Context) {
	stats, err := c.reportService.GetStatistics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
