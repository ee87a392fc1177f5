package services

import (
	"context"
	"fmt"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/repositories"
	"github.com/skytech/srms/internal/pkg/apperrors"
	"github.com/skytech/srms/internal/pkg/validation"
)

// StudentService enforces validation and integrity rules for students
// before delegating to the store.
type StudentService struct {
	studentStore repositories.StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore repositories.StudentStore) *StudentService {
	return &StudentService{
		studentStore: studentStore,
	}
}

// validateStudent validates student data before store operations
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student cannot be nil")
	}

	if validation.IsBlank(student.RegistrationNumber) {
		return apperrors.NewValidationError("registration number is required")
	}

	if validation.IsBlank(student.FirstName) {
		return apperrors.NewValidationError("first name is required")
	}

	if validation.IsBlank(student.LastName) {
		return apperrors.NewValidationError("last name is required")
	}

	if student.EnrollmentDate.IsZero() {
		return apperrors.NewValidationError("enrollment date is required")
	}

	if student.Email != nil && !validation.IsBlank(*student.Email) {
		if !validation.IsValidEmail(*student.Email) {
			return apperrors.NewValidationError("invalid email format")
		}
	}

	return nil
}

// Save creates a new student (ID == 0) or updates an existing one. New
// students are pre-checked for a registration number collision; the store's
// unique constraint remains the authoritative check under concurrency.
func (s *StudentService) Save(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if student.ID == 0 {
		existing, err := s.studentStore.FindByRegistrationNumber(ctx, student.RegistrationNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrRegistrationNumberExists
		}
	}

	return s.studentStore.Save(ctx, student)
}

// FindByID retrieves a student by ID, (nil, nil) when no such student exists.
func (s *StudentService) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	return s.studentStore.FindByID(ctx, id)
}

// FindByRegistrationNumber retrieves a student by registration number,
// (nil, nil) when no such student exists.
func (s *StudentService) FindByRegistrationNumber(ctx context.Context, regNo string) (*models.Student, error) {
	if validation.IsBlank(regNo) {
		return nil, apperrors.NewValidationError("registration number is required")
	}
	return s.studentStore.FindByRegistrationNumber(ctx, regNo)
}

// GetAll retrieves all students ordered by registration number.
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentStore.FindAll(ctx)
}

// Delete removes a student by ID. The store cascade-deletes the student's
// enrollments.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}

	student, err := s.studentStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("student not found with ID: %d", id))
	}

	return s.studentStore.DeleteByID(ctx, id)
}
