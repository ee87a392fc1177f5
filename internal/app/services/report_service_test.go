package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/repositories"
	"github.com/skytech/srms/internal/pkg/apperrors"
)

type ReportServiceSuite struct {
	suite.Suite
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
	service     *ReportService

	student *models.Student
	course  *models.Course
}

func (s *ReportServiceSuite) SetupTest() {
	stores := repositories.NewMemoryStores()
	s.students = NewStudentService(stores.Students())
	s.courses = NewCourseService(stores.Courses())
	s.enrollments = NewEnrollmentService(stores.Enrollments(), stores.Students(), stores.Courses())
	s.service = NewReportService(s.students, s.courses, s.enrollments)

	ctx := context.Background()
	var err error

	student := newStudent("REG-001")
	student.Department = ptr("Computer Science")
	s.student, err = s.students.Save(ctx, student)
	s.Require().NoError(err)

	s.course, err = s.courses.Save(ctx, newCourse("CS101"))
	s.Require().NoError(err)
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) enroll(grade *string) *models.Enrollment {
	enrollment := &models.Enrollment{
		StudentID:      s.student.ID,
		CourseID:       s.course.ID,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		Semester:       ptr("Fall"),
		AcademicYear:   ptr("2024-2025"),
		Grade:          grade,
	}
	saved, err := s.enrollments.Save(context.Background(), enrollment)
	s.Require().NoError(err)
	return saved
}

func (s *ReportServiceSuite) TestGenerateTranscript() {
	s.enroll(ptr("A-"))

	transcript, err := s.service.GenerateTranscript(context.Background(), s.student.ID)
	s.Require().NoError(err)

	s.Contains(transcript, "STUDENT TRANSCRIPT")
	s.Contains(transcript, "Registration No: REG-001")
	s.Contains(transcript, "Name: Jane Doe")
	s.Contains(transcript, "Department: Computer Science")
	s.Contains(transcript, "CS101")
	s.Contains(transcript, "A-")
	s.Contains(transcript, "Total Courses: 1")
	s.Contains(transcript, "Total Credits: 4")
}

func (s *ReportServiceSuite) TestGenerateTranscriptUngraded() {
	s.enroll(nil)

	transcript, err := s.service.GenerateTranscript(context.Background(), s.student.ID)
	s.Require().NoError(err)
	s.Contains(transcript, "In Progress")
}

func (s *ReportServiceSuite) TestGenerateTranscriptStudentNotFound() {
	_, err := s.service.GenerateTranscript(context.Background(), 999)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReportServiceSuite) TestGenerateCourseRoster() {
	s.enroll(ptr("B+"))

	roster, err := s.service.GenerateCourseRoster(context.Background(), s.course.ID)
	s.Require().NoError(err)

	s.Equal(s.course.ID, roster.Course.ID)
	s.Len(roster.Enrollments, 1)
	s.Contains(roster.Text, "Course Roster: CS101 - Introduction to Algorithms")
	s.Contains(roster.Text, "REG-001")
	s.Contains(roster.Text, "Jane Doe")
	s.Contains(roster.Text, "B+")
	s.Contains(roster.Text, "Total Students: 1")
}

func (s *ReportServiceSuite) TestGenerateCourseRosterCourseNotFound() {
	_, err := s.service.GenerateCourseRoster(context.Background(), 999)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReportServiceSuite) TestGenerateSummary() {
	s.enroll(ptr("A"))

	summary, err := s.service.GenerateSummary(context.Background(), "", "")
	s.Require().NoError(err)
	s.Contains(summary, "ENROLLMENT SUMMARY REPORT")
	s.Contains(summary, "Total Enrollments: 1")
	s.Contains(summary, "Enrollments with Grades: 1")
	s.Contains(summary, "Grade A: 1")
}

func (s *ReportServiceSuite) TestGenerateSummaryFiltered() {
	s.enroll(ptr("A"))

	summary, err := s.service.GenerateSummary(context.Background(), "Spring", "")
	s.Require().NoError(err)
	s.Contains(summary, "Semester: Spring")
	s.Contains(summary, "Total Enrollments: 0")

	summary, err = s.service.GenerateSummary(context.Background(), "Fall", "2024-2025")
	s.Require().NoError(err)
	s.Contains(summary, "Total Enrollments: 1")
}

func (s *ReportServiceSuite) TestGetStatistics() {
	s.enroll(nil)

	stats, err := s.service.GetStatistics(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.TotalStudents)
	s.Equal(1, stats.TotalCourses)
	s.Equal(1, stats.TotalEnrollments)
}
