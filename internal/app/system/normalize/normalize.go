// internal/app/system/normalize/normalize.go
//
// Package normalize holds the canonical-form rules for user-supplied
// identity fields. Every store write and every lookup goes through these
// so that "User@Example.COM" and "user@example.com" are the same account.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username trims a username. Case is preserved; uniqueness is enforced on
// the trimmed form.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
