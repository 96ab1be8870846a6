package usecase

import (
	"regexp"
	"strings"
)

const (
	// minNameLength is the minimum display-name length in runes.
	minNameLength = 2
	// minPasswordLength is the minimum password length.
	minPasswordLength = 8
)

// emailPattern is a pragmatic format check, not a full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRegister checks all registration fields and collects one message per
// offending field. It never short-circuits, so the caller can surface every
// field error in a single response.
func validateRegister(name, email, password, confirmPassword string) *ValidationError {
	fields := map[string]string{}

	if len([]rune(strings.TrimSpace(name))) < minNameLength {
		fields["name"] = "Name is too short"
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		fields["email"] = "Please enter a valid email"
	}
	if len(password) < minPasswordLength {
		fields["password"] = "Password must be at least 8 characters"
	}
	if password != confirmPassword {
		fields["confirmPassword"] = "Passwords do not match"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateLogin checks the login fields with the same multi-field reporting
// as validateRegister.
func validateLogin(email, password string) *ValidationError {
	fields := map[string]string{}

	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		fields["email"] = "Please enter a valid email"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// normalizeEmail lower-cases and trims an email address. Emails are stored and
// compared in this form so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
