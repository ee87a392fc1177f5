package models

// Course represents a course offered by the institution.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	CourseCode  string `json:"courseCode" db:"course_code" example:"CS101"` // Unique business key
	CourseTitle string `json:"courseTitle" db:"course_title"`
	Credits     int    `json:"credits" db:"credits" example:"3"` // Valid range is 1 to 10 inclusive

	// Optional fields (nil when not known)
	CourseDescription *string `json:"courseDescription,omitempty" db:"course_description"`
	Department        *string `json:"department,omitempty" db:"department"`
	Prerequisites     *string `json:"prerequisites,omitempty" db:"prerequisites"`
	Instructor        *string `json:"instructor,omitempty" db:"instructor"`
}
