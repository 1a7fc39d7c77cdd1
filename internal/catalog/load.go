package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"course-catalog/internal/domain"
)

// Options configures a load.
type Options struct {
	// Delimiter is the field separator. ',' when zero.
	Delimiter rune
}

// Load reads every line from r and builds a catalog with a two-pass scan.
//
// Pass 1 collects the set of valid course numbers, rejecting duplicates.
// Pass 2 validates each course's prerequisites against that set and
// materializes the accepted records. Prerequisites may reference courses
// declared later in the input, so a single forward pass cannot validate
// them; scanning twice trades a cheap set lookup for a dependency graph.
//
// Bad lines never abort the load: each rejection becomes a Diagnostic and
// the scan continues. The returned catalog is whatever could be built,
// empty if nothing validated.
func Load(r io.Reader, opts Options) (*Catalog, []Diagnostic) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	cat := New()

	// The input is only guaranteed readable once; keep the lines in memory
	// so both passes scan the same data.
	lines, err := readLines(r)
	if err != nil {
		return cat, []Diagnostic{{
			Code:    ReasonSourceUnreadable,
			Message: fmt.Sprintf("could not read course data: %v", err),
		}}
	}

	var diags []Diagnostic

	// ----- Pass 1: collect valid course numbers -----
	declared := make(map[string]bool)
	for i, line := range lines {
		lineNo := i + 1

		tokens := SplitLine(line, delim)
		if tokens == nil {
			continue // skip empty lines
		}

		cand, reason := validateLine(tokens)
		if reason != ReasonNone {
			diags = append(diags, rejectLine(lineNo, reason))
			continue
		}

		if declared[cand.number] {
			diags = append(diags, Diagnostic{
				Line:    lineNo,
				Code:    ReasonDuplicateKey,
				Message: fmt.Sprintf("duplicate course number %q (skipping line)", cand.number),
			})
			continue
		}
		declared[cand.number] = true
	}

	// ----- Pass 2: validate prereqs and insert valid courses -----
	for i, line := range lines {
		lineNo := i + 1

		tokens := SplitLine(line, delim)
		if tokens == nil {
			continue
		}

		cand, reason := validateLine(tokens)
		if reason != ReasonNone {
			continue // already reported in pass 1
		}

		prereqsValid := true
		for _, p := range cand.prereqs {
			if !declared[p] {
				diags = append(diags, Diagnostic{
					Line:    lineNo,
					Code:    ReasonInvalidPrerequisite,
					Message: fmt.Sprintf("invalid prerequisite %q for course %q (skipping course)", p, cand.number),
				})
				prereqsValid = false
				break
			}
		}
		if !prereqsValid {
			continue // do not insert this course
		}

		// Duplicates were rejected in pass 1, but insert guards against
		// overwrites anyway, so the first parsed occurrence wins.
		cat.insert(domain.Course{
			Number:        cand.number,
			Title:         cand.title,
			Prerequisites: cand.prereqs,
		})
	}

	return cat, diags
}

// LoadFile opens path and runs Load on its contents. An unopenable file is
// the one fatal condition: it yields an empty catalog plus a
// source-unreadable diagnostic, distinguishable from "opened but zero
// valid rows" by the diagnostic code.
func LoadFile(path string, opts Options) (*Catalog, []Diagnostic) {
	f, err := os.Open(path)
	if err != nil {
		return New(), []Diagnostic{{
			Code:    ReasonSourceUnreadable,
			Message: fmt.Sprintf("could not open file %q: %v", path, err),
		}}
	}
	defer f.Close()

	return Load(f, opts)
}

func rejectLine(lineNo int, reason Reason) Diagnostic {
	msg := "bad format (skipping line)"
	if reason == ReasonMissingField {
		msg = "missing course number or title (skipping line)"
	}
	return Diagnostic{Line: lineNo, Code: reason, Message: msg}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
