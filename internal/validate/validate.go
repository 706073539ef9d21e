// Package validate holds the input validation and sanitization rules shared
// by registration and profile updates.
package validate

import (
	"html"
	"regexp"
	"strings"
)

var (
	// Simple local-part@domain check; full RFC parsing is not the contract.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Italian mobile/landline numbers: optional +39 prefix, digit groups of
	// 3/3-4/3-4 with optional single spaces between them.
	phonePattern = regexp.MustCompile(`^(\+39)?[\s]?[0-9]{3}[\s]?[0-9]{3,4}[\s]?[0-9]{3,4}$`)
)

// Name requires at least 2 characters after trimming.
func Name(name string) bool {
	return len([]rune(strings.TrimSpace(name))) >= 2
}

// Email checks the address shape.
func Email(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Phone checks the Italian phone number shape.
func Phone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// Password requires at least 6 characters.
func Password(password string) bool {
	return len(password) >= 6
}

// NormalizeEmail lowercases and trims an address. Account email uniqueness is
// defined over this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Sanitize trims and HTML-escapes free-text input before it is persisted.
func Sanitize(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}
