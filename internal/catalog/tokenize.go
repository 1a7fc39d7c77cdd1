package catalog

import "strings"

// NormalizeCourseNumber uppercases a course number for consistent matching
// (e.g. " cs200 " -> "CS200").
func NormalizeCourseNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SplitLine splits one raw line on delim and trims each field. There is no
// quoting or escaping support. A line ending in the delimiter keeps its
// empty trailing field, so the field count of a dangling separator is
// preserved. A blank or whitespace-only line yields nil; callers skip it.
func SplitLine(line string, delim rune) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, string(delim))
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}
