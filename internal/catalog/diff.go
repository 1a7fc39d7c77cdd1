package catalog

import (
	"sort"

	"course-catalog/internal/domain"
)

// Changes summarizes how one catalog differs from another, by course
// number.
type Changes struct {
	Added   []string // present in cur but not in prev
	Removed []string // present in prev but not in cur
	Changed []string // present in both with a different title or prereq list
}

// Empty reports whether the two catalogs matched.
func (ch Changes) Empty() bool {
	return len(ch.Added) == 0 && len(ch.Removed) == 0 && len(ch.Changed) == 0
}

// Diff compares a previous catalog with a current one (e.g. last term's
// file against this term's). Each result slice is sorted by course number.
func Diff(prev, cur *Catalog) Changes {
	var ch Changes

	for num, course := range cur.courses {
		old, ok := prev.courses[num]
		if !ok {
			ch.Added = append(ch.Added, num)
			continue
		}
		if courseChanged(old, course) {
			ch.Changed = append(ch.Changed, num)
		}
	}

	for num := range prev.courses {
		if _, ok := cur.courses[num]; !ok {
			ch.Removed = append(ch.Removed, num)
		}
	}

	sort.Strings(ch.Added)
	sort.Strings(ch.Removed)
	sort.Strings(ch.Changed)
	return ch
}

func courseChanged(old, cur domain.Course) bool {
	if old.Title != cur.Title {
		return true
	}
	if len(old.Prerequisites) != len(cur.Prerequisites) {
		return true
	}
	for i := range old.Prerequisites {
		if old.Prerequisites[i] != cur.Prerequisites[i] {
			return true
		}
	}
	return false
}
