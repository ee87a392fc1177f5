package models

import "time"

// Enrollment links a student to a course for a given term.
// The tuple (StudentID, CourseID, Semester, AcademicYear) is unique.
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	CourseID       int64     `json:"courseId" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`

	// Optional fields (nil when not known). A nil Grade means the
	// enrollment is still in progress.
	Grade        *string `json:"grade,omitempty" db:"grade"`
	Semester     *string `json:"semester,omitempty" db:"semester"`
	AcademicYear *string `json:"academicYear,omitempty" db:"academic_year"`

	// Read-only display fields populated by join reads, never written
	StudentName   string `json:"studentName,omitempty" db:"student_name"`
	StudentRegNo  string `json:"studentRegNo,omitempty" db:"student_reg_no"`
	CourseCode    string `json:"courseCode,omitempty" db:"course_code"`
	CourseTitle   string `json:"courseTitle,omitempty" db:"course_title"`
	CourseCredits int    `json:"courseCredits,omitempty" db:"course_credits"`
}

// IsGraded reports whether a grade has been recorded for the enrollment.
func (e *Enrollment) IsGraded() bool {
	return e.Grade != nil && *e.Grade != ""
}
