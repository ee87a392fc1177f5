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

// Unique constraint backing the course code natural key.
const courseCodeConstraint = "courses_course_code_key"

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Save inserts the course when it has no identity, updates it otherwise.
func (r *CourseRepository) Save(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course.ID == 0 {
		return r.insert(ctx, course)
	}
	return r.update(ctx, course)
}

func (r *CourseRepository) insert(ctx context.Context, course *models.Course) (*models.Course, error) {
	query := `
		INSERT INTO courses (course_code, course_title, credits,
		                     course_description, department, prerequisites, instructor)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseCode,
		course.CourseTitle,
		course.Credits,
		course.CourseDescription,
		course.Department,
		course.Prerequisites,
		course.Instructor,
	).Scan(&course.ID)

	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, courseCodeConstraint) {
			return nil, apperrors.ErrCourseCodeExists
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	return course, nil
}

func (r *CourseRepository) update(ctx context.Context, course *models.Course) (*models.Course, error) {
	query := `
		UPDATE courses
		SET course_code = $1, course_title = $2, credits = $3,
		    course_description = $4, department = $5, prerequisites = $6, instructor = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.CourseCode,
		course.CourseTitle,
		course.Credits,
		course.CourseDescription,
		course.Department,
		course.Prerequisites,
		course.Instructor,
		course.ID,
	)

	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, courseCodeConstraint) {
			return nil, apperrors.ErrCourseCodeExists
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// FindByID retrieves a course by ID, (nil, nil) when absent.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, course_code, course_title, credits,
		       course_description, department, prerequisites, instructor
		FROM courses
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByCourseCode retrieves a course by course code, (nil, nil) when absent.
func (r *CourseRepository) FindByCourseCode(ctx context.Context, courseCode string) (*models.Course, error) {
	query := `
		SELECT id, course_code, course_title, credits,
		       course_description, department, prerequisites, instructor
		FROM courses
		WHERE course_code = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, courseCode))
}

// FindAll retrieves all courses ordered by course code.
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, course_code, course_title, credits,
		       course_description, department, prerequisites, instructor
		FROM courses
		ORDER BY course_code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, apperrors.NewPersistenceError(err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	return courses, nil
}

// DeleteByID deletes a course by ID. Enrollments referencing the course are
// removed by the ON DELETE CASCADE foreign key.
func (r *CourseRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *CourseRepository) scanOne(row pgx.Row) (*models.Course, error) {
	var course models.Course
	if err := scanCourse(row, &course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return &course, nil
}

// scanCourse decodes one courses row.
func scanCourse(row pgx.Row, course *models.Course) error {
	return row.Scan(
		&course.ID,
		&course.CourseCode,
		&course.CourseTitle,
		&course.Credits,
		&course.CourseDescription,
		&course.Department,
		&course.Prerequisites,
		&course.Instructor,
	)
}
