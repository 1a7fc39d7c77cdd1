package main

import (
	"testing"

	"course-catalog/internal/catalog"
)

func TestRejectionSummary(t *testing.T) {
	testCases := []struct {
		name     string
		diags    []catalog.Diagnostic
		expected string
	}{
		{
			name:     "no diagnostics",
			diags:    nil,
			expected: "",
		},
		{
			name: "single code",
			diags: []catalog.Diagnostic{
				{Line: 1, Code: catalog.ReasonMalformed},
			},
			expected: " (rejected: 1 malformed)",
		},
		{
			name: "multiple codes are sorted",
			diags: []catalog.Diagnostic{
				{Line: 1, Code: catalog.ReasonDuplicateKey},
				{Line: 2, Code: catalog.ReasonDuplicateKey},
				{Line: 3, Code: catalog.ReasonInvalidPrerequisite},
			},
			expected: " (rejected: 1 invalid-prerequisite, 2 duplicate-key)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := rejectionSummary(tc.diags)
			if result != tc.expected {
				t.Errorf("rejectionSummary() = %q, want %q", result, tc.expected)
			}
		})
	}
}
