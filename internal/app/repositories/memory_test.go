package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func seedStudent(t *testing.T, store StudentStore, regNo string) *models.Student {
	t.Helper()
	saved, err := store.Save(context.Background(), &models.Student{
		RegistrationNumber: regNo,
		FirstName:          "Ada",
		LastName:           "Lovelace",
		EnrollmentDate:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return saved
}

func seedCourse(t *testing.T, store CourseStore, code string) *models.Course {
	t.Helper()
	saved, err := store.Save(context.Background(), &models.Course{
		CourseCode:  code,
		CourseTitle: "Numerical Methods",
		Credits:     3,
	})
	require.NoError(t, err)
	return saved
}

func TestMemoryStudentStoreCopies(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()
	store := stores.Students()

	saved := seedStudent(t, store, "REG-001")

	// Mutating the returned record must not leak into the store
	saved.FirstName = "Changed"

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
}

func TestMemoryStudentStoreUpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStores().Students()

	_, err := store.Save(ctx, &models.Student{
		ID:                 42,
		RegistrationNumber: "REG-001",
		FirstName:          "Ada",
		LastName:           "Lovelace",
		EnrollmentDate:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryStudentStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStores().Students()

	first := seedStudent(t, store, "REG-001")

	_, err := store.Save(ctx, &models.Student{
		RegistrationNumber: "REG-001",
		FirstName:          "Grace",
		LastName:           "Hopper",
		EnrollmentDate:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)

	// Updating a record against its own registration number is allowed
	first.FirstName = "Augusta"
	_, err = store.Save(ctx, first)
	assert.NoError(t, err)
}

func TestMemoryEnrollmentStoreReferentialChecks(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	student := seedStudent(t, stores.Students(), "REG-001")

	_, err := stores.Enrollments().Save(ctx, &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       999,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrReferentialViolation)

	_, err = stores.Enrollments().Save(ctx, &models.Enrollment{
		StudentID:      999,
		CourseID:       999,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrReferentialViolation)
}

func TestMemoryEnrollmentStoreDecoratesJoinFields(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	student := seedStudent(t, stores.Students(), "REG-001")
	course := seedCourse(t, stores.Courses(), "MA101")

	// Display fields supplied by the caller are ignored on write
	saved, err := stores.Enrollments().Save(ctx, &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		StudentName:    "Bogus",
		CourseCode:     "Bogus",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", saved.StudentName)
	assert.Equal(t, "REG-001", saved.StudentRegNo)
	assert.Equal(t, "MA101", saved.CourseCode)
	assert.Equal(t, "Numerical Methods", saved.CourseTitle)
	assert.Equal(t, 3, saved.CourseCredits)
}

func TestMemoryEnrollmentStoreTupleUniqueness(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()
	store := stores.Enrollments()

	student := seedStudent(t, stores.Students(), "REG-001")
	course := seedCourse(t, stores.Courses(), "MA101")

	enrollment := &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		Semester:       strPtr("Fall"),
		AcademicYear:   strPtr("2024-2025"),
	}

	saved, err := store.Save(ctx, enrollment)
	require.NoError(t, err)

	_, err = store.Save(ctx, &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		Semester:       strPtr("Fall"),
		AcademicYear:   strPtr("2024-2025"),
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)

	// A record never collides with itself on update
	saved.Grade = strPtr("B")
	_, err = store.Save(ctx, saved)
	assert.NoError(t, err)
}

func TestMemoryCourseStoreCascadeDelete(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	student := seedStudent(t, stores.Students(), "REG-001")
	course := seedCourse(t, stores.Courses(), "MA101")

	saved, err := stores.Enrollments().Save(ctx, &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, stores.Courses().DeleteByID(ctx, course.ID))

	found, err := stores.Enrollments().FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryEnrollmentStoreDelete(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()
	store := stores.Enrollments()

	err := store.DeleteByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	student := seedStudent(t, stores.Students(), "REG-001")
	course := seedCourse(t, stores.Courses(), "MA101")

	saved, err := store.Save(ctx, &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, saved.ID))

	// Deleting an enrollment leaves its student and course alone
	stillThere, err := stores.Students().FindByID(ctx, student.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere)
}
