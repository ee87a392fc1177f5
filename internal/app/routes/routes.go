package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skytech/srms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	reportController *controllers.ReportController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/registration/:regNo", studentController.GetStudentByRegistrationNumber)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/code/:code", courseController.GetCourseByCode)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("/student/:studentId", enrollmentController.GetEnrollmentsByStudent)
		enrollments.GET("/course/:courseId", enrollmentController.GetEnrollmentsByCourse)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.PATCH("/:id/grade", enrollmentController.UpdateGrade)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/transcript/:studentId", reportController.GetTranscript)
		reports.GET("/roster/:courseId", reportController.GetCourseRoster)
		reports.GET("/summary", reportController.GetSummary)
		reports.GET("/statistics", reportController.GetStatistics)
	}
}
