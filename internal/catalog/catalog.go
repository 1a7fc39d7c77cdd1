package catalog

import (
	"sort"

	"course-catalog/internal/domain"
)

// Catalog is the keyed collection of validated courses produced by one
// load. It is rebuilt wholesale by every load; callers own its lifetime.
type Catalog struct {
	courses map[string]domain.Course
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{courses: make(map[string]domain.Course)}
}

// Len reports how many courses the catalog holds.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// insert adds a course unless its number is already present. Pass 1 of the
// loader should make collisions impossible, but the guard keeps the first
// inserted record authoritative either way.
func (c *Catalog) insert(course domain.Course) {
	if _, exists := c.courses[course.Number]; exists {
		return
	}
	c.courses[course.Number] = course
}

// SortedCourses returns every course ordered by ascending course number.
// Numbers are uppercased at load time, so plain string ordering is stable.
func (c *Catalog) SortedCourses() []domain.Course {
	out := make([]domain.Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}

// Prereq is one resolved prerequisite of a looked-up course.
type Prereq struct {
	Number string
	Title  string
}

// CourseInfo is a lookup result with prerequisite titles resolved.
type CourseInfo struct {
	Number        string
	Title         string
	Prerequisites []Prereq
}

// Lookup finds a course by raw number, normalized exactly as at load time.
// On a miss it returns false with the normalized number the caller can
// echo back. On a hit every prerequisite resolves to (number, title);
// load-time validation should make unresolved prerequisites impossible,
// but a "(missing info)" title stands in if one ever slips through.
func (c *Catalog) Lookup(raw string) (CourseInfo, bool) {
	num := NormalizeCourseNumber(raw)

	course, ok := c.courses[num]
	if !ok {
		return CourseInfo{Number: num}, false
	}

	info := CourseInfo{Number: course.Number, Title: course.Title}
	for _, p := range course.Prerequisites {
		if pc, found := c.courses[p]; found {
			info.Prerequisites = append(info.Prerequisites, Prereq{Number: pc.Number, Title: pc.Title})
		} else {
			info.Prerequisites = append(info.Prerequisites, Prereq{Number: p, Title: "(missing info)"})
		}
	}
	return info, true
}
