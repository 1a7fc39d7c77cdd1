package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"course-catalog/internal/domain"
)

// Normalized catalog CSV template. Keep header order EXACT.
var catalogHeader = []string{
	"COURSE_NUMBER",
	"TITLE",
	"PREREQUISITES",
}

// WriteCatalogCSV writes courses in the normalized catalog format.
// Prerequisites are joined with " | " to keep the CSV clean of nested
// delimiters.
func WriteCatalogCSV(w io.Writer, courses []domain.Course) error {
	cw := csv.NewWriter(w)
	// match typical import templates
	cw.UseCRLF = true

	if err := cw.Write(catalogHeader); err != nil {
		return err
	}

	for _, c := range courses {
		if err := cw.Write(toCatalogRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCatalogCSVFile writes the normalized catalog CSV to outPath.
func WriteCatalogCSVFile(outPath string, courses []domain.Course) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", outPath, err)
	}

	if err := WriteCatalogCSV(f, courses); err != nil {
		f.Close()
		return fmt.Errorf("export: write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", outPath, err)
	}
	return nil
}

func toCatalogRow(c domain.Course) []string {
	prereqs := ""
	if len(c.Prerequisites) > 0 {
		prereqs = strings.Join(c.Prerequisites, " | ")
	}

	return []string{
		c.Number, // COURSE_NUMBER
		c.Title,  // TITLE
		prereqs,  // PREREQUISITES
	}
}
