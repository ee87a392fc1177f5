package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/skytech/srms/internal/app/controllers"
	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/repositories"
	"github.com/skytech/srms/internal/app/services"
)

type RoutesSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *RoutesSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	stores := repositories.NewMemoryStores()
	studentService := services.NewStudentService(stores.Students())
	courseService := services.NewCourseService(stores.Courses())
	enrollmentService := services.NewEnrollmentService(stores.Enrollments(), stores.Students(), stores.Courses())
	reportService := services.NewReportService(studentService, courseService, enrollmentService)

	s.router = gin.New()
	SetupRouter(s.router,
		controllers.NewStudentController(studentService),
		controllers.NewCourseController(courseService),
		controllers.NewEnrollmentController(enrollmentService),
		controllers.NewReportController(reportService),
	)
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}

func (s *RoutesSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *RoutesSuite) decodeData(recorder *httptest.ResponseRecorder, target any) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &envelope))
	s.Require().NoError(json.Unmarshal(envelope.Data, target))
}

func (s *RoutesSuite) createStudent(regNo string) models.Student {
	recorder := s.request(http.MethodPost, "/api/v1/students", gin.H{
		"registrationNumber": regNo,
		"firstName":          "Jane",
		"lastName":           "Doe",
		"enrollmentDate":     "2024-09-01T00:00:00Z",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var student models.Student
	s.decodeData(recorder, &student)
	return student
}

func (s *RoutesSuite) createCourse(code string) models.Course {
	recorder := s.request(http.MethodPost, "/api/v1/courses", gin.H{
		"courseCode":  code,
		"courseTitle": "Introduction to Algorithms",
		"credits":     4,
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var course models.Course
	s.decodeData(recorder, &course)
	return course
}

func (s *RoutesSuite) TestHealth() {
	recorder := s.request(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *RoutesSuite) TestStudentLifecycle() {
	student := s.createStudent("REG-001")
	s.NotZero(student.ID)

	recorder := s.request(http.MethodGet, fmt.Sprintf("/api/v1/students/%d", student.ID), nil)
	s.Equal(http.StatusOK, recorder.Code)

	recorder = s.request(http.MethodGet, "/api/v1/students/registration/REG-001", nil)
	s.Equal(http.StatusOK, recorder.Code)

	recorder = s.request(http.MethodDelete, fmt.Sprintf("/api/v1/students/%d", student.ID), nil)
	s.Equal(http.StatusOK, recorder.Code)

	recorder = s.request(http.MethodGet, fmt.Sprintf("/api/v1/students/%d", student.ID), nil)
	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *RoutesSuite) TestDuplicateRegistrationNumberConflicts() {
	s.createStudent("REG-001")

	recorder := s.request(http.MethodPost, "/api/v1/students", gin.H{
		"registrationNumber": "REG-001",
		"firstName":          "John",
		"lastName":           "Smith",
		"enrollmentDate":     "2024-09-01T00:00:00Z",
	})
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *RoutesSuite) TestInvalidCreditsRejected() {
	recorder := s.request(http.MethodPost, "/api/v1/courses", gin.H{
		"courseCode":  "CS101",
		"courseTitle": "Introduction to Algorithms",
		"credits":     11,
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *RoutesSuite) TestEnrollmentMissingStudentUnprocessable() {
	course := s.createCourse("CS101")

	recorder := s.request(http.MethodPost, "/api/v1/enrollments", gin.H{
		"studentId":      999,
		"courseId":       course.ID,
		"enrollmentDate": "2024-09-15T00:00:00Z",
	})
	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *RoutesSuite) TestEnrollmentAndGradeFlow() {
	student := s.createStudent("REG-001")
	course := s.createCourse("CS101")

	recorder := s.request(http.MethodPost, "/api/v1/enrollments", gin.H{
		"studentId":      student.ID,
		"courseId":       course.ID,
		"enrollmentDate": "2024-09-15T00:00:00Z",
		"semester":       "Fall",
		"academicYear":   "2024-2025",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var enrollment models.Enrollment
	s.decodeData(recorder, &enrollment)
	s.Equal("REG-001", enrollment.StudentRegNo)
	s.Equal("CS101", enrollment.CourseCode)

	// Invalid grade leaves the enrollment in progress
	recorder = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/enrollments/%d/grade", enrollment.ID), gin.H{"grade": "Z"})
	s.Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/enrollments/%d/grade", enrollment.ID), gin.H{"grade": "A"})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var graded models.Enrollment
	s.decodeData(recorder, &graded)
	s.Require().NotNil(graded.Grade)
	s.Equal("A", *graded.Grade)
}

func (s *RoutesSuite) TestTranscriptEndpoint() {
	student := s.createStudent("REG-001")
	course := s.createCourse("CS101")

	recorder := s.request(http.MethodPost, "/api/v1/enrollments", gin.H{
		"studentId":      student.ID,
		"courseId":       course.ID,
		"enrollmentDate": "2024-09-15T00:00:00Z",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	recorder = s.request(http.MethodGet, fmt.Sprintf("/api/v1/reports/transcript/%d", student.ID), nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "STUDENT TRANSCRIPT")

	recorder = s.request(http.MethodGet, "/api/v1/reports/statistics", nil)
	s.Equal(http.StatusOK, recorder.Code)
}
