package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/pkg/apperrors"
)

const reportRule = "═══════════════════════════════════════════════════════"
const reportLightRule = "───────────────────────────────────────────────────────"

// CourseRoster is a rendered roster plus the listing it was built from.
type CourseRoster struct {
	Course      *models.Course       `json:"course"`
	Enrollments []*models.Enrollment `json:"enrollments"`
	Text        string               `json:"text"`
}

// Statistics holds record counts across the three entities.
type Statistics struct {
	TotalStudents    int `json:"totalStudents"`
	TotalCourses     int `json:"totalCourses"`
	TotalEnrollments int `json:"totalEnrollments"`
}

// ReportService renders text reports over the record services. It is pure
// presentation: every figure comes from a core query result.
type ReportService struct {
	studentService    *StudentService
	courseService     *CourseService
	enrollmentService *EnrollmentService
}

// NewReportService creates a new report service instance
func NewReportService(
	studentService *StudentService,
	courseService *CourseService,
	enrollmentService *EnrollmentService,
) *ReportService {
	return &ReportService{
		studentService:    studentService,
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// GenerateTranscript renders a student's academic record as text.
func (s *ReportService) GenerateTranscript(ctx context.Context, studentID int64) (string, error) {
	student, err := s.studentService.FindByID(ctx, studentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("student not found with ID: %d", studentID))
	}

	enrollments, err := s.enrollmentService.GetByStudent(ctx, studentID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(reportRule + "\n")
	b.WriteString("                 STUDENT TRANSCRIPT\n")
	b.WriteString(reportRule + "\n\n")

	b.WriteString("Student Information:\n")
	b.WriteString(reportLightRule + "\n")
	fmt.Fprintf(&b, "Registration No: %s\n", student.RegistrationNumber)
	fmt.Fprintf(&b, "Name: %s\n", student.FullName())
	fmt.Fprintf(&b, "Department: %s\n", orNA(student.Department))
	fmt.Fprintf(&b, "Email: %s\n", orNA(student.Email))
	fmt.Fprintf(&b, "Enrollment Date: %s\n\n", student.EnrollmentDate.Format("2006-01-02"))

	b.WriteString("Academic Records:\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "%-12s %-30s %-8s %-10s %-8s\n",
		"Course Code", "Course Title", "Credits", "Semester", "Grade")
	b.WriteString(reportLightRule + "\n")

	totalCredits := 0
	for _, enrollment := range enrollments {
		title := enrollment.CourseTitle
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		grade := "In Progress"
		if enrollment.IsGraded() {
			grade = *enrollment.Grade
		}
		fmt.Fprintf(&b, "%-12s %-30s %-8d %-10s %-8s\n",
			enrollment.CourseCode, title, enrollment.CourseCredits,
			orNA(enrollment.Semester), grade)
		totalCredits += enrollment.CourseCredits
	}

	b.WriteString(reportLightRule + "\n")
	fmt.Fprintf(&b, "Total Courses: %d\n", len(enrollments))
	fmt.Fprintf(&b, "Total Credits: %d\n", totalCredits)
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "\nGenerated on: %s\n", time.Now().Format("2006-01-02"))

	return b.String(), nil
}

// GenerateCourseRoster renders the enrolled-student table for a course.
func (s *ReportService) GenerateCourseRoster(ctx context.Context, courseID int64) (*CourseRoster, error) {
	course, err := s.courseService.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("course not found with ID: %d", courseID))
	}

	enrollments, err := s.enrollmentService.GetByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Course Roster: %s - %s\n\n", course.CourseCode, course.CourseTitle)

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Reg No", "Student", "Enrolled", "Semester", "Year", "Grade"})
	for _, enrollment := range enrollments {
		grade := "In Progress"
		if enrollment.IsGraded() {
			grade = *enrollment.Grade
		}
		table.Append([]string{
			enrollment.StudentRegNo,
			enrollment.StudentName,
			enrollment.EnrollmentDate.Format("2006-01-02"),
			orNA(enrollment.Semester),
			orNA(enrollment.AcademicYear),
			grade,
		})
	}
	table.Render()

	fmt.Fprintf(&b, "\nTotal Students: %d\n", len(enrollments))

	return &CourseRoster{
		Course:      course,
		Enrollments: enrollments,
		Text:        b.String(),
	}, nil
}

// GenerateSummary renders enrollment totals and the grade distribution,
// optionally filtered by semester and academic year.
func (s *ReportService) GenerateSummary(ctx context.Context, semester, academicYear string) (string, error) {
	enrollments, err := s.enrollmentService.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var filtered []*models.Enrollment
	for _, enrollment := range enrollments {
		if semester != "" && (enrollment.Semester == nil || *enrollment.Semester != semester) {
			continue
		}
		if academicYear != "" && (enrollment.AcademicYear == nil || *enrollment.AcademicYear != academicYear) {
			continue
		}
		filtered = append(filtered, enrollment)
	}

	graded := 0
	gradeCounts := make(map[string]int)
	for _, enrollment := range filtered {
		if enrollment.IsGraded() {
			graded++
			gradeCounts[*enrollment.Grade]++
		}
	}

	var b strings.Builder
	b.WriteString(reportRule + "\n")
	b.WriteString("             ENROLLMENT SUMMARY REPORT\n")
	b.WriteString(reportRule + "\n\n")

	if semester != "" {
		fmt.Fprintf(&b, "Semester: %s\n", semester)
	}
	if academicYear != "" {
		fmt.Fprintf(&b, "Academic Year: %s\n", academicYear)
	}
	fmt.Fprintf(&b, "Report Date: %s\n\n", time.Now().Format("2006-01-02"))

	b.WriteString("Summary Statistics:\n")
	b.WriteString(reportLightRule + "\n")
	fmt.Fprintf(&b, "Total Enrollments: %d\n", len(filtered))
	fmt.Fprintf(&b, "Enrollments with Grades: %d\n", graded)
	fmt.Fprintf(&b, "Enrollments In Progress: %d\n\n", len(filtered)-graded)

	b.WriteString("Grade Distribution:\n")
	b.WriteString(reportLightRule + "\n")
	for _, grade := range models.ValidGrades {
		if count := gradeCounts[grade]; count > 0 {
			fmt.Fprintf(&b, "Grade %s: %d\n", grade, count)
		}
	}

	b.WriteString("\n" + reportRule + "\n")

	return b.String(), nil
}

// GetStatistics returns record counts across the three entities.
func (s *ReportService) GetStatistics(ctx context.Context) (*Statistics, error) {
	students, err := s.studentService.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseService.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentService.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalStudents:    len(students),
		TotalCourses:     len(courses),
		TotalEnrollments: len(enrollments),
	}, nil
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
