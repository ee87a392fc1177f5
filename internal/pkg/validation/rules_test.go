package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane.doe@example.edu",
		"j+filter@uni.ac.uk",
		"a_b-c@host",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "email %q must be accepted", email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"spaces in@example.com",
		"@example.com",
		"jane@",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "email %q must be rejected", email)
	}
}

func TestIsValidCredits(t *testing.T) {
	assert.False(t, IsValidCredits(0))
	assert.True(t, IsValidCredits(1))
	assert.True(t, IsValidCredits(10))
	assert.False(t, IsValidCredits(11))
	assert.False(t, IsValidCredits(-1))
}
