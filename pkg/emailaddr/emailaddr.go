// Package emailaddr holds the normalization and format rules applied to
// every email address before it is stored or compared.
package emailaddr

import (
	"regexp"
	"strings"
)

// Accepts local@domain.tld. Intentionally loose beyond requiring a single
// "@" with a dotted domain; full RFC 5322 parsing rejects addresses that
// real signup forms accept.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims surrounding whitespace and lowercases the address.
// Normalizing an already-normalized address returns the same value.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Valid reports whether the address matches the local@domain.tld pattern.
// Callers are expected to pass a normalized address.
func Valid(email string) bool {
	return emailPattern.MatchString(email)
}
