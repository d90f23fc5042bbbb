// Package sanitizer provides string normalization helpers for form input.
// Normalization here is presentational: it never changes whether a value
// passes validation, only how it is displayed or stored.
package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and lowercases the rest.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeWhitespace trims the string and collapses internal whitespace runs
// to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName capitalizes the first letter of every whitespace-separated
// token and collapses redundant whitespace: "  tashi   dorji " -> "Tashi Dorji".
func NormalizeName(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = titleCaser.String(strings.ToLower(f))
	}
	return strings.Join(fields, " ")
}
