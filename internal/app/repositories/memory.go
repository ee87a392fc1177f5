package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/pkg/apperrors"
)

// MemoryStores is an in-memory implementation of the store contracts. It
// enforces the same uniqueness, referential and cascade rules as the
// relational schema, which keeps the services testable without a database.
// All reads return copies so no caller ever shares mutable state.
type MemoryStores struct {
	mu sync.RWMutex

	students    map[int64]models.Student
	courses     map[int64]models.Course
	enrollments map[int64]models.Enrollment

	nextStudentID    int64
	nextCourseID     int64
	nextEnrollmentID int64
}

// NewMemoryStores creates an empty in-memory store set.
func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		students:    make(map[int64]models.Student),
		courses:     make(map[int64]models.Course),
		enrollments: make(map[int64]models.Enrollment),
	}
}

// Students returns the StudentStore view.
func (m *MemoryStores) Students() StudentStore { return &memoryStudentStore{m} }

// Courses returns the CourseStore view.
func (m *MemoryStores) Courses() CourseStore { return &memoryCourseStore{m} }

// Enrollments returns the EnrollmentStore view.
func (m *MemoryStores) Enrollments() EnrollmentStore { return &memoryEnrollmentStore{m} }

// --- StudentStore ---

type memoryStudentStore struct {
	m *MemoryStores
}

func (s *memoryStudentStore) Save(_ context.Context, student *models.Student) (*models.Student, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for id, existing := range s.m.students {
		if existing.RegistrationNumber == student.RegistrationNumber && id != student.ID {
			return nil, apperrors.ErrRegistrationNumberExists
		}
	}

	saved := *student
	if saved.ID == 0 {
		s.m.nextStudentID++
		saved.ID = s.m.nextStudentID
	} else if _, ok := s.m.students[saved.ID]; !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	s.m.students[saved.ID] = saved
	return &saved, nil
}

func (s *memoryStudentStore) FindByID(_ context.Context, id int64) (*models.Student, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	if student, ok := s.m.students[id]; ok {
		copied := student
		return &copied, nil
	}
	return nil, nil
}

func (s *memoryStudentStore) FindByRegistrationNumber(_ context.Context, regNo string) (*models.Student, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, student := range s.m.students {
		if student.RegistrationNumber == regNo {
			copied := student
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memoryStudentStore) FindAll(_ context.Context) ([]*models.Student, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	students := make([]*models.Student, 0, len(s.m.students))
	for _, student := range s.m.students {
		copied := student
		students = append(students, &copied)
	}
	sort.Slice(students, func(i, j int) bool {
		return students[i].RegistrationNumber < students[j].RegistrationNumber
	})
	return students, nil
}

func (s *memoryStudentStore) DeleteByID(_ context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.m.students, id)

	// Mirror of the relational ON DELETE CASCADE
	for enrollmentID, enrollment := range s.m.enrollments {
		if enrollment.StudentID == id {
			delete(s.m.enrollments, enrollmentID)
		}
	}
	return nil
}

// --- CourseStore ---

type memoryCourseStore struct {
	m *MemoryStores
}

func (s *memoryCourseStore) Save(_ context.Context, course *models.Course) (*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for id, existing := range s.m.courses {
		if existing.CourseCode == course.CourseCode && id != course.ID {
			return nil, apperrors.ErrCourseCodeExists
		}
	}

	saved := *course
	if saved.ID == 0 {
		s.m.nextCourseID++
		saved.ID = s.m.nextCourseID
	} else if _, ok := s.m.courses[saved.ID]; !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	s.m.courses[saved.ID] = saved
	return &saved, nil
}

func (s *memoryCourseStore) FindByID(_ context.Context, id int64) (*models.Course, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	if course, ok := s.m.courses[id]; ok {
		copied := course
		return &copied, nil
	}
	return nil, nil
}

func (s *memoryCourseStore) FindByCourseCode(_ context.Context, courseCode string) (*models.Course, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, course := range s.m.courses {
		if course.CourseCode == courseCode {
			copied := course
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memoryCourseStore) FindAll(_ context.Context) ([]*models.Course, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	courses := make([]*models.Course, 0, len(s.m.courses))
	for _, course := range s.m.courses {
		copied := course
		courses = append(courses, &copied)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CourseCode < courses[j].CourseCode
	})
	return courses, nil
}

func (s *memoryCourseStore) DeleteByID(_ context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.m.courses, id)

	for enrollmentID, enrollment := range s.m.enrollments {
		if enrollment.CourseID == id {
			delete(s.m.enrollments, enrollmentID)
		}
	}
	return nil
}

// --- EnrollmentStore ---

type memoryEnrollmentStore struct {
	m *MemoryStores
}

func (s *memoryEnrollmentStore) Save(_ context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.students[enrollment.StudentID]; !ok {
		return nil, apperrors.NewReferentialViolationError(
			fmt.Sprintf("student not found with ID: %d", enrollment.StudentID))
	}
	if _, ok := s.m.courses[enrollment.CourseID]; !ok {
		return nil, apperrors.NewReferentialViolationError(
			fmt.Sprintf("course not found with ID: %d", enrollment.CourseID))
	}

	for id, existing := range s.m.enrollments {
		if id == enrollment.ID {
			continue
		}
		if existing.StudentID == enrollment.StudentID &&
			existing.CourseID == enrollment.CourseID &&
			equalOptional(existing.Semester, enrollment.Semester) &&
			equalOptional(existing.AcademicYear, enrollment.AcademicYear) {
			return nil, apperrors.ErrEnrollmentExists
		}
	}

	saved := *enrollment
	if saved.ID == 0 {
		s.m.nextEnrollmentID++
		saved.ID = s.m.nextEnrollmentID
	} else if _, ok := s.m.enrollments[saved.ID]; !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	// Display fields belong to join reads only
	saved.StudentName = ""
	saved.StudentRegNo = ""
	saved.CourseCode = ""
	saved.CourseTitle = ""
	saved.CourseCredits = 0

	s.m.enrollments[saved.ID] = saved

	result := saved
	s.decorate(&result)
	return &result, nil
}

func (s *memoryEnrollmentStore) FindByID(_ context.Context, id int64) (*models.Enrollment, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	if enrollment, ok := s.m.enrollments[id]; ok {
		copied := enrollment
		s.decorate(&copied)
		return &copied, nil
	}
	return nil, nil
}

func (s *memoryEnrollmentStore) FindAll(_ context.Context) ([]*models.Enrollment, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	enrollments := s.collect(func(models.Enrollment) bool { return true })
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].EnrollmentDate.After(enrollments[j].EnrollmentDate)
	})
	return enrollments, nil
}

func (s *memoryEnrollmentStore) FindByStudentID(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	enrollments := s.collect(func(e models.Enrollment) bool { return e.StudentID == studentID })
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].EnrollmentDate.After(enrollments[j].EnrollmentDate)
	})
	return enrollments, nil
}

func (s *memoryEnrollmentStore) FindByCourseID(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	enrollments := s.collect(func(e models.Enrollment) bool { return e.CourseID == courseID })
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].StudentRegNo < enrollments[j].StudentRegNo
	})
	return enrollments, nil
}

func (s *memoryEnrollmentStore) DeleteByID(_ context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(s.m.enrollments, id)
	return nil
}

func (s *memoryEnrollmentStore) collect(match func(models.Enrollment) bool) []*models.Enrollment {
	var enrollments []*models.Enrollment
	for _, enrollment := range s.m.enrollments {
		if !match(enrollment) {
			continue
		}
		copied := enrollment
		s.decorate(&copied)
		enrollments = append(enrollments, &copied)
	}
	return enrollments
}

// decorate fills the denormalized display fields the way the relational
// store's join read does. Caller must hold the lock.
func (s *memoryEnrollmentStore) decorate(enrollment *models.Enrollment) {
	if student, ok := s.m.students[enrollment.StudentID]; ok {
		enrollment.StudentName = student.FullName()
		enrollment.StudentRegNo = student.RegistrationNumber
	}
	if course, ok := s.m.courses[enrollment.CourseID]; ok {
		enrollment.CourseCode = course.CourseCode
		enrollment.CourseTitle = course.CourseTitle
		enrollment.CourseCredits = course.Credits
	}
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
