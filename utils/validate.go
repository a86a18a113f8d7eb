package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the string looks like an email address.
// Same permissive pattern the client forms use.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
