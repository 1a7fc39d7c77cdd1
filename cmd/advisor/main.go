package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"course-catalog/internal/catalog"
	"course-catalog/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "course data file (prompted for when empty)")
	flag.Parse()

	cfg := config.Load()

	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "Welcome to the Course Advising Program")

	fileName := strings.TrimSpace(*fileFlag)
	if fileName == "" {
		fmt.Fprint(out, "Enter the course data file name: ")
		if in.Scan() {
			fileName = strings.TrimSpace(in.Text())
		}
	}
	if fileName == "" {
		fileName = cfg.CourseFile
	}

	run(in, out, os.Stderr, fileName, catalog.Options{Delimiter: cfg.Delimiter()})
}

func run(in *bufio.Scanner, out, errOut io.Writer, fileName string, opts catalog.Options) {
	var cat *catalog.Catalog
	loaded := false

	for {
		printMenu(out)
		if !in.Scan() {
			return
		}

		choice, ok := parseChoice(in.Text())
		if !ok {
			fmt.Fprintln(out, "Invalid input. Please enter 1, 2, 3, or 9.")
			continue
		}

		switch choice {
		case 1:
			if fileName == "" {
				fmt.Fprint(out, "Enter the course data file name: ")
				if !in.Scan() {
					return
				}
				fileName = strings.TrimSpace(in.Text())
			}

			var diags []catalog.Diagnostic
			cat, diags = catalog.LoadFile(fileName, opts)
			for _, d := range diags {
				fmt.Fprintf(errOut, "ERROR: %s\n", d)
			}

			if cat.Len() > 0 {
				loaded = true
				fmt.Fprintf(out, "Data loaded successfully (%d courses).\n", cat.Len())
			} else {
				loaded = false
				fmt.Fprintln(out, "No courses loaded. Check errors above and try again.")
			}

		case 2:
			if !loaded {
				fmt.Fprintln(out, "Please load data first (Option 1).")
				continue
			}
			printCourseList(out, cat)

		case 3:
			if !loaded {
				fmt.Fprintln(out, "Please load data first (Option 1).")
				continue
			}
			fmt.Fprint(out, "Enter a course number (e.g., CS200): ")
			if !in.Scan() {
				return
			}
			printCourseInfo(out, cat, in.Text())

		case 9:
			fmt.Fprintln(out, "Goodbye.")
			return

		default:
			fmt.Fprintln(out, "Invalid option. Please enter 1, 2, 3, or 9.")
		}
	}
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w, "\nMenu:")
	fmt.Fprintln(w, "  1. Load Course Data")
	fmt.Fprintln(w, "  2. Print Course List")
	fmt.Fprintln(w, "  3. Print Course")
	fmt.Fprintln(w, "  9. Exit")
	fmt.Fprint(w, "Enter your choice: ")
}

func parseChoice(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

func printCourseList(w io.Writer, cat *catalog.Catalog) {
	courses := cat.SortedCourses()
	if len(courses) == 0 {
		fmt.Fprintln(w, "No course data loaded.")
		return
	}
	for _, c := range courses {
		fmt.Fprintf(w, "%s, %s\n", c.Number, c.Title)
	}
}

func printCourseInfo(w io.Writer, cat *catalog.Catalog, raw string) {
	info, ok := cat.Lookup(raw)
	if !ok {
		fmt.Fprintf(w, "Course not found: %s\n", info.Number)
		return
	}

	fmt.Fprintf(w, "%s, %s\n", info.Number, info.Title)

	if len(info.Prerequisites) == 0 {
		fmt.Fprintln(w, "Prerequisites: None")
		return
	}

	fmt.Fprintln(w, "Prerequisites:")
	for _, p := range info.Prerequisites {
		fmt.Fprintf(w, "  %s, %s\n", p.Number, p.Title)
	}
}
