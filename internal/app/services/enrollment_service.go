package services

import (
	"context"
	"fmt"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/repositories"
	"github.com/skytech/srms/internal/pkg/apperrors"
)

// EnrollmentService orchestrates across students, courses and enrollments.
// It verifies referential integrity before every write; the composite
// uniqueness of (student, course, semester, academic year) is deliberately
// not pre-checked here to avoid a race between check and insert, and is
// enforced by the store's constraint instead.
type EnrollmentService struct {
	enrollmentStore repositories.EnrollmentStore
	studentStore    repositories.StudentStore
	courseStore     repositories.CourseStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentStore repositories.EnrollmentStore,
	studentStore repositories.StudentStore,
	courseStore repositories.CourseStore,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentStore: enrollmentStore,
		studentStore:    studentStore,
		courseStore:     courseStore,
	}
}

// validateEnrollment validates enrollment data before store operations
func (s *EnrollmentService) validateEnrollment(enrollment *models.Enrollment) error {
	if enrollment == nil {
		return apperrors.NewValidationError("enrollment cannot be nil")
	}

	if enrollment.StudentID <= 0 {
		return apperrors.NewValidationError("valid student ID is required")
	}

	if enrollment.CourseID <= 0 {
		return apperrors.NewValidationError("valid course ID is required")
	}

	if enrollment.EnrollmentDate.IsZero() {
		return apperrors.NewValidationError("enrollment date is required")
	}

	if enrollment.Grade != nil && *enrollment.Grade != "" {
		if err := validateGrade(*enrollment.Grade); err != nil {
			return err
		}
	}

	return nil
}

// validateGrade checks membership in the grade vocabulary. The match is
// exact and case-sensitive; no normalization.
func validateGrade(grade string) error {
	if grade == "" {
		return apperrors.NewValidationError("grade cannot be empty")
	}

	if !models.IsValidGrade(grade) {
		return apperrors.NewValidationError(
			fmt.Sprintf("invalid grade %q, must be one of: A, A-, B+, B, B-, C+, C, C-, D+, D, D-, E, F", grade))
	}

	return nil
}

// Save creates a new enrollment (ID == 0) or updates an existing one. Both
// referenced entities must exist; a missing one fails with a
// referential-violation naming the missing ID before any write happens.
func (s *EnrollmentService) Save(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if err := s.validateEnrollment(enrollment); err != nil {
		return nil, err
	}

	student, err := s.studentStore.FindByID(ctx, enrollment.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewReferentialViolationError(
			fmt.Sprintf("student not found with ID: %d", enrollment.StudentID))
	}

	course, err := s.courseStore.FindByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.NewReferentialViolationError(
			fmt.Sprintf("course not found with ID: %d", enrollment.CourseID))
	}

	return s.enrollmentStore.Save(ctx, enrollment)
}

// FindByID retrieves an enrollment by ID with the denormalized display
// fields, (nil, nil) when no such enrollment exists.
func (s *EnrollmentService) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid enrollment ID")
	}
	return s.enrollmentStore.FindByID(ctx, id)
}

// GetAll retrieves all enrollments, most recent enrollment date first.
func (s *EnrollmentService) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollmentStore.FindAll(ctx)
}

// GetByStudent retrieves a student's enrollments, most recent first.
func (s *EnrollmentService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	return s.enrollmentStore.FindByStudentID(ctx, studentID)
}

// GetByCourse retrieves a course's enrollments ordered by student
// registration number.
func (s *EnrollmentService) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if courseID <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}
	return s.enrollmentStore.FindByCourseID(ctx, courseID)
}

// UpdateGrade records a grade on an enrollment as a read-modify-write. This
// is the only exposed transition from pending to graded; there is no
// transition back.
func (s *EnrollmentService) UpdateGrade(ctx context.Context, enrollmentID int64, grade string) (*models.Enrollment, error) {
	if enrollmentID <= 0 {
		return nil, apperrors.NewValidationError("invalid enrollment ID")
	}

	enrollment, err := s.enrollmentStore.FindByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("enrollment not found with ID: %d", enrollmentID))
	}

	if err := validateGrade(grade); err != nil {
		return nil, err
	}

	enrollment.Grade = &grade
	return s.enrollmentStore.Save(ctx, enrollment)
}

// Delete removes an enrollment by ID.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid enrollment ID")
	}

	enrollment, err := s.enrollmentStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("enrollment not found with ID: %d", id))
	}

	return s.enrollmentStore.DeleteByID(ctx, id)
}
