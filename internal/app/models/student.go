package models

import "time"

// Student defines the student model based on the 'students' table.
// An ID of 0 means the record has not been persisted yet.
type Student struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	RegistrationNumber string    `json:"registrationNumber" db:"registration_number" example:"REG-2024-001"` // Unique business key, immutable once assigned
	FirstName          string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName           string    `json:"lastName" db:"last_name" example:"Doe"`
	EnrollmentDate     time.Time `json:"enrollmentDate" db:"enrollment_date"`

	// Optional fields (nil when not known)
	Email       *string    `json:"email,omitempty" db:"email"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Department  *string    `json:"department,omitempty" db:"department"`
	PhoneNumber *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	Address     *string    `json:"address,omitempty" db:"address"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
