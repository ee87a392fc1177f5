package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/pkg/apperrors"
	"github.com/skytech/srms/internal/pkg/dberrors"
)

// Composite unique constraint on (student_id, course_id, semester, academic_year).
const enrollmentTupleConstraint = "uq_enrollment"

// enrollmentSelect is the join read shared by all enrollment queries; it
// populates the denormalized student and course display fields.
const enrollmentSelect = `
	SELECT e.id, e.student_id, e.course_id, e.enrollment_date,
	       e.grade, e.semester, e.academic_year,
	       s.first_name || ' ' || s.last_name AS student_name,
	       s.registration_number AS student_reg_no,
	       c.course_code, c.course_title, c.credits AS course_credits
	FROM enrollments e
	JOIN students s ON e.student_id = s.id
	JOIN courses c ON e.course_id = c.id
`

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Save inserts the enrollment when it has no identity, updates it
// otherwise. The composite uniqueness of (student, course, semester,
// academic year) is enforced here by the unique index, not pre-checked by
// the service; a violation surfaces as ErrEnrollmentExists.
func (r *EnrollmentRepository) Save(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	if enrollment.ID == 0 {
		return r.insert(ctx, enrollment)
	}
	return r.update(ctx, enrollment)
}

func (r *EnrollmentRepository) insert(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrollment_date, grade, semester, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
		enrollment.Grade,
		enrollment.Semester,
		enrollment.AcademicYear,
	).Scan(&enrollment.ID)

	if err != nil {
		return nil, classifyEnrollmentWriteError(err)
	}

	return enrollment, nil
}

func (r *EnrollmentRepository) update(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	query := `
		UPDATE enrollments
		SET student_id = $1, course_id = $2, enrollment_date = $3,
		    grade = $4, semester = $5, academic_year = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
		enrollment.Grade,
		enrollment.Semester,
		enrollment.AcademicYear,
		enrollment.ID,
	)

	if err != nil {
		return nil, classifyEnrollmentWriteError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	return enrollment, nil
}

func classifyEnrollmentWriteError(err error) error {
	if dberrors.IsUniqueConstraintViolation(err, enrollmentTupleConstraint) {
		return apperrors.ErrEnrollmentExists
	}
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.NewReferentialViolationError("enrollment references a missing student or course")
	}
	return apperrors.NewPersistenceError(err)
}

// FindByID retrieves an enrollment by ID with display fields, (nil, nil) when absent.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := enrollmentSelect + ` WHERE e.id = $1`

	var enrollment models.Enrollment
	if err := scanEnrollment(r.db.QueryRow(ctx, query, id), &enrollment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	return &enrollment, nil
}

// FindAll retrieves all enrollments, most recent enrollment date first.
func (r *EnrollmentRepository) FindAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := enrollmentSelect + ` ORDER BY e.enrollment_date DESC`
	return r.queryMany(ctx, query)
}

// FindByStudentID retrieves a student's enrollments, most recent first.
func (r *EnrollmentRepository) FindByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := enrollmentSelect + ` WHERE e.student_id = $1 ORDER BY e.enrollment_date DESC`
	return r.queryMany(ctx, query, studentID)
}

// FindByCourseID retrieves a course's enrollments ordered by student
// registration number.
func (r *EnrollmentRepository) FindByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := enrollmentSelect + ` WHERE e.course_id = $1 ORDER BY s.registration_number`
	return r.queryMany(ctx, query, courseID)
}

// DeleteByID deletes an enrollment by ID.
func (r *EnrollmentRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

func (r *EnrollmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := scanEnrollment(rows, &enrollment); err != nil {
			return nil, apperrors.NewPersistenceError(err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	return enrollments, nil
}

// scanEnrollment decodes one joined enrollments row.
func scanEnrollment(row pgx.Row, enrollment *models.Enrollment) error {
	return row.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
		&enrollment.Grade,
		&enrollment.Semester,
		&enrollment.AcademicYear,
		&enrollment.StudentName,
		&enrollment.StudentRegNo,
		&enrollment.CourseCode,
		&enrollment.CourseTitle,
		&enrollment.CourseCredits,
	)
}
