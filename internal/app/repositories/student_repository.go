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

// Unique constraint backing the registration number natural key.
const studentRegNoConstraint = "students_registration_number_key"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Save inserts the student when it has no identity, updates it otherwise.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.ID == 0 {
		return r.insert(ctx, student)
	}
	return r.update(ctx, student)
}

func (r *StudentRepository) insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		INSERT INTO students (registration_number, first_name, last_name, enrollment_date,
		                      email, date_of_birth, department, phone_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.RegistrationNumber,
		student.FirstName,
		student.LastName,
		student.EnrollmentDate,
		student.Email,
		student.DateOfBirth,
		student.Department,
		student.PhoneNumber,
		student.Address,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, studentRegNoConstraint) {
			return nil, apperrors.ErrRegistrationNumberExists
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	return student, nil
}

func (r *StudentRepository) update(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		UPDATE students
		SET registration_number = $1, first_name = $2, last_name = $3, enrollment_date = $4,
		    email = $5, date_of_birth = $6, department = $7, phone_number = $8, address = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.RegistrationNumber,
		student.FirstName,
		student.LastName,
		student.EnrollmentDate,
		student.Email,
		student.DateOfBirth,
		student.Department,
		student.PhoneNumber,
		student.Address,
		student.ID,
	)

	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, studentRegNoConstraint) {
			return nil, apperrors.ErrRegistrationNumberExists
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	return student, nil
}

// FindByID retrieves a student by ID, (nil, nil) when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, registration_number, first_name, last_name, enrollment_date,
		       email, date_of_birth, department, phone_number, address
		FROM students
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByRegistrationNumber retrieves a student by registration number, (nil, nil) when absent.
func (r *StudentRepository) FindByRegistrationNumber(ctx context.Context, regNo string) (*models.Student, error) {
	query := `
		SELECT id, registration_number, first_name, last_name, enrollment_date,
		       email, date_of_birth, department, phone_number, address
		FROM students
		WHERE registration_number = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, regNo))
}

// FindAll retrieves all students ordered by registration number.
func (r *StudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, registration_number, first_name, last_name, enrollment_date,
		       email, date_of_birth, department, phone_number, address
		FROM students
		ORDER BY registration_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := scanStudent(rows, &student); err != nil {
			return nil, apperrors.NewPersistenceError(err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	return students, nil
}

// DeleteByID deletes a student by ID. Enrollments referencing the student
// are removed by the ON DELETE CASCADE foreign key.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewPersistenceError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func (r *StudentRepository) scanOne(row pgx.Row) (*models.Student, error) {
	var student models.Student
	if err := scanStudent(row, &student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return &student, nil
}

// scanStudent decodes one students row; the single place column order is
// mapped to fields.
func scanStudent(row pgx.Row, student *models.Student) error {
	return row.Scan(
		&student.ID,
		&student.RegistrationNumber,
		&student.FirstName,
		&student.LastName,
		&student.EnrollmentDate,
		&student.Email,
		&student.DateOfBirth,
		&student.Department,
		&student.PhoneNumber,
		&student.Address,
	)
}
