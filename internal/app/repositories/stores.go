package repositories

import (
	"context"

	"github.com/skytech/srms/internal/app/models"
)

// Store contracts consumed by the record services. Save inserts when the
// entity has no identity (ID == 0) and populates the ID on return; it
// updates otherwise. FindByID and the natural-key lookups return (nil, nil)
// when no record exists. Duplicate natural or composite keys surface as
// apperrors.ErrDuplicateKey from the implementation's own constraint
// enforcement, which is the authoritative uniqueness mechanism.

// StudentStore persists students, ordered listings by registration number.
type StudentStore interface {
	Save(ctx context.Context, student *models.Student) (*models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	FindByRegistrationNumber(ctx context.Context, regNo string) (*models.Student, error)
	FindAll(ctx context.Context) ([]*models.Student, error)
	// DeleteByID cascade-deletes the student's enrollments.
	DeleteByID(ctx context.Context, id int64) error
}

// CourseStore persists courses, ordered listings by course code.
type CourseStore interface {
	Save(ctx context.Context, course *models.Course) (*models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindByCourseCode(ctx context.Context, courseCode string) (*models.Course, error)
	FindAll(ctx context.Context) ([]*models.Course, error)
	// DeleteByID cascade-deletes the course's enrollments.
	DeleteByID(ctx context.Context, id int64) error
}

// EnrollmentStore persists enrollments. Reads are join reads that populate
// the denormalized student and course display fields. FindAll and
// FindByStudentID order by enrollment date, most recent first;
// FindByCourseID orders by student registration number.
type EnrollmentStore interface {
	Save(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	FindByID(ctx context.Context, id int64) (*models.Enrollment, error)
	FindAll(ctx context.Context) ([]*models.Enrollment, error)
	FindByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	FindByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	DeleteByID(ctx context.Context, id int64) error
}
