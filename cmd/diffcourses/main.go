package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"course-catalog/internal/catalog"
	"course-catalog/internal/concurrency"
	"course-catalog/internal/config"
)

func main() {
	cfg := config.Load()

	var (
		oldPath = flag.String("old", "", "previous course data file")
		newPath = flag.String("new", "", "current course data file")
	)
	flag.Parse()

	if *oldPath == "" || *newPath == "" {
		log.Fatal("usage: diffcourses -old prev.csv -new cur.csv")
	}

	opts := catalog.Options{Delimiter: cfg.Delimiter()}

	// The two files are independent; load them concurrently. Each load is
	// still a plain sequential two-pass scan.
	paths := []string{*oldPath, *newPath}
	cats, errs := concurrency.ProcessParallel(context.Background(), paths, concurrency.DefaultOptions(),
		func(ctx context.Context, index int, path string) (*catalog.Catalog, error) {
			cat, diags := catalog.LoadFile(path, opts)
			for _, d := range diags {
				log.Printf("WARN: %s: %s", path, d)
			}
			if cat.Len() == 0 {
				return cat, fmt.Errorf("no valid courses in %s", path)
			}
			return cat, nil
		})
	if len(errs) > 0 {
		log.Fatal(errs[0])
	}

	ch := catalog.Diff(cats[0], cats[1])
	printChanges(os.Stdout, ch)
}

func printChanges(w io.Writer, ch catalog.Changes) {
	if ch.Empty() {
		fmt.Fprintln(w, "No changes.")
		return
	}

	for _, num := range ch.Added {
		fmt.Fprintf(w, "added:   %s\n", num)
	}
	for _, num := range ch.Removed {
		fmt.Fprintf(w, "removed: %s\n", num)
	}
	for _, num := range ch.Changed {
		fmt.Fprintf(w, "changed: %s\n", num)
	}
}
