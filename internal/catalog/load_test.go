package catalog

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleInput = `CS101, Intro to CS,
CS201, Data Structures, CS101
CS300, Algorithms, CS201,CS999
cs101, Duplicate Intro,
`

func TestLoadSampleInput(t *testing.T) {
	cat, diags := Load(strings.NewReader(sampleInput), Options{})

	if cat.Len() != 2 {
		t.Fatalf("expected 2 courses, got %d", cat.Len())
	}

	// CS300 references CS999, which is never declared; the whole course is
	// dropped even though its own number and title are fine.
	if _, ok := cat.Lookup("CS300"); ok {
		t.Error("CS300 should have been rejected (invalid prerequisite)")
	}

	// The second cs101 line is a duplicate; the first declaration wins.
	info, ok := cat.Lookup("cs101")
	if !ok {
		t.Fatal("CS101 should be present")
	}
	if info.Title != "Intro to CS" {
		t.Errorf("CS101 title = %q, want %q (first occurrence wins)", info.Title, "Intro to CS")
	}

	wantCodes := map[Reason]int{
		ReasonDuplicateKey:        1,
		ReasonInvalidPrerequisite: 1,
	}
	gotCodes := map[Reason]int{}
	for _, d := range diags {
		gotCodes[d.Code]++
	}
	if !reflect.DeepEqual(gotCodes, wantCodes) {
		t.Errorf("diagnostic codes = %v, want %v", gotCodes, wantCodes)
	}
}

func TestLoadNormalizesKeys(t *testing.T) {
	input := "  cs101 , Intro to CS\ncs201, Data Structures,  Cs101 \n"
	cat, diags := Load(strings.NewReader(input), Options{})

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 courses, got %d", cat.Len())
	}

	courses := cat.SortedCourses()
	for _, c := range courses {
		if c.Number != strings.ToUpper(strings.TrimSpace(c.Number)) {
			t.Errorf("course number %q is not normalized", c.Number)
		}
	}
	if courses[1].Prerequisites[0] != "CS101" {
		t.Errorf("prereq = %q, want CS101", courses[1].Prerequisites[0])
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	input := "\nCS101, Intro to CS\n   \n\nCS201, Data Structures, CS101\n\n"
	cat, diags := Load(strings.NewReader(input), Options{})

	if len(diags) != 0 {
		t.Errorf("blank lines should not produce diagnostics, got %v", diags)
	}
	if cat.Len() != 2 {
		t.Errorf("expected 2 courses, got %d", cat.Len())
	}
}

func TestLoadBadLines(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		wantCode Reason
	}{
		{"single field", "CS101", ReasonMalformed},
		{"empty key", ", Intro to CS", ReasonMissingField},
		{"empty title", "CS101, ", ReasonMissingField},
		{"whitespace title", "CS101,    ,CS100", ReasonMissingField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cat, diags := Load(strings.NewReader(tc.line+"\n"), Options{})
			if cat.Len() != 0 {
				t.Errorf("expected empty catalog, got %d courses", cat.Len())
			}
			if len(diags) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
			}
			if diags[0].Code != tc.wantCode {
				t.Errorf("diagnostic code = %q, want %q", diags[0].Code, tc.wantCode)
			}
			if diags[0].Line != 1 {
				t.Errorf("diagnostic line = %d, want 1", diags[0].Line)
			}
		})
	}
}

func TestLoadDuplicateKeySetUnchanged(t *testing.T) {
	// The duplicate line must not disturb the pass-1 key set: CS201 still
	// resolves its CS101 prerequisite against the first declaration.
	input := "CS101, Intro to CS\ncs101, Duplicate Intro\nCS201, Data Structures, CS101\n"
	cat, diags := Load(strings.NewReader(input), Options{})

	if cat.Len() != 2 {
		t.Fatalf("expected 2 courses, got %d", cat.Len())
	}

	var dup int
	for _, d := range diags {
		if d.Code == ReasonDuplicateKey {
			dup++
			if d.Line != 2 {
				t.Errorf("duplicate reported on line %d, want 2", d.Line)
			}
		}
	}
	if dup != 1 {
		t.Errorf("expected 1 duplicate-key diagnostic, got %d", dup)
	}
}

func TestLoadCourseWithSelfDeclaredPrereqLater(t *testing.T) {
	// Forward references: CS201 lists CS301, which only appears later in
	// the file. The two-pass design must accept it.
	input := "CS201, Data Structures, CS301\nCS301, Advanced Topics\n"
	cat, diags := Load(strings.NewReader(input), Options{})

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, ok := cat.Lookup("CS201"); !ok {
		t.Error("CS201 with forward-referenced prerequisite should be accepted")
	}
}

func TestLoadIdempotent(t *testing.T) {
	cat1, _ := Load(strings.NewReader(sampleInput), Options{})
	cat2, _ := Load(strings.NewReader(sampleInput), Options{})

	if !Diff(cat1, cat2).Empty() {
		t.Error("loading the same input twice should produce identical catalogs")
	}
	if !reflect.DeepEqual(cat1.SortedCourses(), cat2.SortedCourses()) {
		t.Error("sorted course lists differ between identical loads")
	}
}

func TestLoadCustomDelimiter(t *testing.T) {
	input := "CS101; Intro to CS\nCS201; Data Structures; CS101\n"
	cat, diags := Load(strings.NewReader(input), Options{Delimiter: ';'})

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if cat.Len() != 2 {
		t.Errorf("expected 2 courses, got %d", cat.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-file.csv")
	cat, diags := LoadFile(path, Options{})

	if cat.Len() != 0 {
		t.Errorf("expected empty catalog, got %d courses", cat.Len())
	}
	if len(diags) != 1 || diags[0].Code != ReasonSourceUnreadable {
		t.Fatalf("expected one source-unreadable diagnostic, got %v", diags)
	}
	if diags[0].Line != 0 {
		t.Errorf("source-level diagnostic should carry line 0, got %d", diags[0].Line)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 3, Code: ReasonMalformed, Message: "bad format (skipping line)"}
	if got := d.String(); got != "line 3: bad format (skipping line)" {
		t.Errorf("Diagnostic.String() = %q", got)
	}

	d = Diagnostic{Code: ReasonSourceUnreadable, Message: "could not open file"}
	if got := d.String(); got != "could not open file" {
		t.Errorf("Diagnostic.String() = %q", got)
	}
}
