package catalog

import "strings"

// candidate is one well-formed course declaration before any cross-record
// checks.
type candidate struct {
	number  string
	title   string
	prereqs []string
}

// validateLine decides whether tokens form a course declaration and
// normalizes its key. Cross-record checks (duplicate numbers, prerequisite
// existence) belong to the loader, which needs the full key set first.
func validateLine(tokens []string) (candidate, Reason) {
	// Must have at least courseNumber + title.
	if len(tokens) < 2 {
		return candidate{}, ReasonMalformed
	}

	num := NormalizeCourseNumber(tokens[0])
	title := strings.TrimSpace(tokens[1])
	if num == "" || title == "" {
		return candidate{}, ReasonMissingField
	}

	var prereqs []string
	for _, tok := range tokens[2:] {
		p := NormalizeCourseNumber(tok)
		// Blank prereq tokens mean "no prerequisite", not an error.
		if p == "" {
			continue
		}
		prereqs = append(prereqs, p)
	}

	return candidate{number: num, title: title, prereqs: prereqs}, ReasonNone
}
