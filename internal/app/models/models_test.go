package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidGrade(t *testing.T) {
	for _, grade := range ValidGrades {
		assert.True(t, IsValidGrade(grade), "grade %q must be accepted", grade)
	}

	invalid := []string{"", "Z", "G", "a", "b+", "A+", "E-", " A", "A ", "PASS"}
	for _, grade := range invalid {
		assert.False(t, IsValidGrade(grade), "grade %q must be rejected", grade)
	}
}

func TestGradeVocabulary(t *testing.T) {
	assert.Equal(t, []string{
		"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "D-", "E", "F",
	}, ValidGrades)
}

func TestStudentFullName(t *testing.T) {
	student := Student{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", student.FullName())
}

func TestEnrollmentIsGraded(t *testing.T) {
	var enrollment Enrollment
	assert.False(t, enrollment.IsGraded())

	empty := ""
	enrollment.Grade = &empty
	assert.False(t, enrollment.IsGraded())

	grade := "A"
	enrollment.Grade = &grade
	assert.True(t, enrollment.IsGraded())
}
