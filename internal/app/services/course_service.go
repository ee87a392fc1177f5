package services

import (
	"context"
	"fmt"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/repositories"
	"github.com/skytech/srms/internal/pkg/apperrors"
	"github.com/skytech/srms/internal/pkg/validation"
)

// CourseService enforces validation and integrity rules for courses before
// delegating to the store.
type CourseService struct {
	courseStore repositories.CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore repositories.CourseStore) *CourseService {
	return &CourseService{
		courseStore: courseStore,
	}
}

// validateCourse validates course data before store operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course cannot be nil")
	}

	if validation.IsBlank(course.CourseCode) {
		return apperrors.NewValidationError("course code is required")
	}

	if validation.IsBlank(course.CourseTitle) {
		return apperrors.NewValidationError("course title is required")
	}

	if !validation.IsValidCredits(course.Credits) {
		return apperrors.NewValidationError(fmt.Sprintf("credits must be between %d and %d",
			validation.CreditsMin, validation.CreditsMax))
	}

	return nil
}

// Save creates a new course (ID == 0) or updates an existing one. New
// courses are pre-checked for a course code collision; the store's unique
// constraint remains the authoritative check under concurrency.
func (s *CourseService) Save(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if course.ID == 0 {
		existing, err := s.courseStore.FindByCourseCode(ctx, course.CourseCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrCourseCodeExists
		}
	}

	return s.courseStore.Save(ctx, course)
}

// FindByID retrieves a course by ID, (nil, nil) when no such course exists.
func (s *CourseService) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}
	return s.courseStore.FindByID(ctx, id)
}

// FindByCourseCode retrieves a course by course code, (nil, nil) when no
// such course exists.
func (s *CourseService) FindByCourseCode(ctx context.Context, courseCode string) (*models.Course, error) {
	if validation.IsBlank(courseCode) {
		return nil, apperrors.NewValidationError("course code is required")
	}
	return s.courseStore.FindByCourseCode(ctx, courseCode)
}

// GetAll retrieves all courses ordered by course code.
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseStore.FindAll(ctx)
}

// Delete removes a course by ID. The store cascade-deletes the course's
// enrollments.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}

	course, err := s.courseStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("course not found with ID: %d", id))
	}

	return s.courseStore.DeleteByID(ctx, id)
}
