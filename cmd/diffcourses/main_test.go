package main

import (
	"bytes"
	"testing"

	"course-catalog/internal/catalog"
)

func TestPrintChangesEmpty(t *testing.T) {
	var buf bytes.Buffer
	printChanges(&buf, catalog.Changes{})

	if buf.String() != "No changes.\n" {
		t.Errorf("printChanges output = %q", buf.String())
	}
}

func TestPrintChanges(t *testing.T) {
	var buf bytes.Buffer
	printChanges(&buf, catalog.Changes{
		Added:   []string{"CS301"},
		Removed: []string{"CS250"},
		Changed: []string{"CS201"},
	})

	want := "added:   CS301\nremoved: CS250\nchanged: CS201\n"
	if buf.String() != want {
		t.Errorf("printChanges output = %q, want %q", buf.String(), want)
	}
}
