// Package textutil provides the low-level string extraction helpers used by
// the catalog parsers: URI detection, parenthesized version tokens, and
// pipe-delimited row splitting.
//
// All functions are pure and total over arbitrary input: "no match" is
// reported through a boolean, never through an error or a panic.
package textutil

import (
	"regexp"
	"strings"
)

// Compiled once at package init; both patterns follow the catalog's
// plaintext conventions and are part of its semi-stable external contract.
var (
	uriRegex   = regexp.MustCompile(`(http|https)://(\w+:?\w*@)?(\S+)(:[0-9]+)?(/|/([\w#!:.?+=&%@!-/]))?`)
	parenRegex = regexp.MustCompile(`\([-\w+.! ]+\)`)
)

// FindURI returns the first http/https URI found in line.
//
// Parameters:
//   - line: The text line to search
//
// Returns:
//   - string: The matched URI, empty when no match
//   - bool: true if a URI was found
func FindURI(line string) (string, bool) {
	match := uriRegex.FindString(line)
	return match, match != ""
}

// FindLastParenthesized returns the last parenthesized token in line whose
// interior consists of word characters, digits, '-', '+', '.', '!' and
// spaces. Catalog identity lines carry the default version this way,
// trailing the homepage URL.
//
// Parameters:
//   - line: The text line to search
//
// Returns:
//   - string: The matched token including parentheses, empty when no match
//   - bool: true if a token was found
func FindLastParenthesized(line string) (string, bool) {
	matches := parenRegex.FindAllString(line, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1], true
}

// SplitPipeRow splits a pipe-delimited row into its fields, trimming
// surrounding whitespace from each field.
//
// Parameters:
//   - line: The row to split
//
// Returns:
//   - []string: The trimmed fields; a line without '|' yields one field
func SplitPipeRow(line string) []string {
	parts := strings.Split(line, "|")
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = strings.TrimSpace(part)
	}
	return fields
}

// FieldAt returns the field at index, or the empty string when the index
// is out of range. Missing fields never fail a row.
//
// Parameters:
//   - fields: The split row fields
//   - index: The field position to read
//
// Returns:
//   - string: The field value, or "" when absent
func FieldAt(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return fields[index]
}
