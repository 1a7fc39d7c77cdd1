package export

import (
	"encoding/xml"
	"fmt"
	"os"

	"course-catalog/internal/domain"
)

/*
Catalog XML shape:

<Course_List>
  <Course>
    <course_number>CS201</course_number>
    <title>Data Structures</title>
    <prerequisite_list>
      <prerequisite>CS101</prerequisite>
    </prerequisite_list>
  </Course>
</Course_List>
*/

type courseList struct {
	XMLName xml.Name   `xml:"Course_List"`
	Courses []xmlCourse `xml:"Course"`
}

type xmlCourse struct {
	Number string `xml:"course_number"`
	Title  string `xml:"title"`

	Prerequisites *prereqList `xml:"prerequisite_list,omitempty"`
}

type prereqList struct {
	Prerequisites []string `xml:"prerequisite"`
}

// WriteCatalogXML writes a single XML file with the full catalog.
func WriteCatalogXML(outPath string, courses []domain.Course) error {
	out := courseList{
		Courses: make([]xmlCourse, 0, len(courses)),
	}

	for _, c := range courses {
		row := xmlCourse{
			Number: c.Number,
			Title:  c.Title,
		}
		if len(c.Prerequisites) > 0 {
			row.Prerequisites = &prereqList{Prerequisites: c.Prerequisites}
		}
		out.Courses = append(out.Courses, row)
	}

	b, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal xml: %w", err)
	}

	if err := os.WriteFile(outPath, append([]byte(xml.Header), b...), 0o644); err != nil {
		return fmt.Errorf("export: write xml: %w", err)
	}

	return nil
}
