package samsconfig

import (
	"fmt"
	"strconv"
	"strings"
)

const commentMarker = "#"

// StripComments drops everything from the first comment marker on.
func StripComments(line string) string {
	if i := strings.Index(line, commentMarker); i >= 0 {
		return line[:i]
	}
	return line
}

// parseLine splits a configuration line into a trimmed name and value. It
// reports false for blank lines, comment-only lines and lines without '='.
func parseLine(line string) (name, value string, ok bool) {
	line = StripComments(line)
	if strings.TrimSpace(line) == "" {
		return "", "", false
	}

	name, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), true
}

// scanInt reads a leading decimal integer, ignoring leading spaces and any
// trailing text.
func scanInt(raw string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return 0, err
	}
	return v, nil
}

// scanFloat reads a leading floating point number the same way scanInt does.
func scanFloat(raw string) (float64, error) {
	var v float64
	if _, err := fmt.Sscanf(raw, "%g", &v); err != nil {
		return 0, err
	}
	return v, nil
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
