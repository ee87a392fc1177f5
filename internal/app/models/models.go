package models

// ValidGrades is the fixed grade vocabulary, in display order. Membership is
// checked by exact, case-sensitive value; the vocabulary is a business rule,
// not a type.
var ValidGrades = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "D-", "E", "F"}

var gradeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ValidGrades))
	for _, g := range ValidGrades {
		set[g] = struct{}{}
	}
	return set
}()

// IsValidGrade reports whether grade belongs to the grade vocabulary.
func IsValidGrade(grade string) bool {
	_, ok := gradeSet[grade]
	return ok
}
