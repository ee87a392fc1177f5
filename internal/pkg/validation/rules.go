package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns and bounds
var (
	// Email validation pattern - local@domain shape
	EmailPattern = `^[A-Za-z0-9+_.\-]+@[A-Za-z0-9.\-]+$`

	// Credits bounds, inclusive
	CreditsMin = 1
	CreditsMax = 10
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsBlank reports whether a string is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidEmail reports whether s has a local@domain shape.
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidCredits reports whether credits is within the allowed range.
func IsValidCredits(credits int) bool {
	return credits >= CreditsMin && credits <= CreditsMax
}
