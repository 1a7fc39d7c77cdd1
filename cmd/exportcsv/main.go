package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"course-catalog/internal/catalog"
	"course-catalog/internal/config"
	"course-catalog/internal/export"
	"course-catalog/internal/httpx"
	"course-catalog/internal/sftpclient"
)

func main() {
	cfg := config.Load()

	var (
		inPath     = flag.String("in", cfg.CourseFile, "course data file")
		fetchURL   = flag.String("url", "", "fetch the course data file from this URL before loading")
		sftpFetch  = flag.Bool("sftp-fetch", false, "fetch the course data file via SFTP before loading")
		outPath    = flag.String("out", "CATALOG.csv", "output csv path")
		compress   = flag.Bool("br", false, "also write a brotli-compressed copy of the output")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated file via SFTP")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer rootCancel()

	// ensure output dir
	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	sftpCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}

	if *fetchURL != "" {
		ctx, cancel := context.WithTimeout(rootCtx, time.Duration(cfg.FetchTimeoutSeconds)*time.Second)
		err := httpx.FetchFile(ctx, http.DefaultClient, *fetchURL, *inPath, httpx.DefaultRetryConfig())
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("fetched %s -> %s", *fetchURL, *inPath)
	}

	if *sftpFetch {
		ctx, cancel := context.WithTimeout(rootCtx, 5*time.Minute)
		err := sftpclient.DownloadFile(ctx, sftpCfg, filepath.Base(*inPath), *inPath)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("fetched sftp://%s:%d%s/%s -> %s", sftpCfg.Host, sftpCfg.Port, sftpCfg.RemoteDir, filepath.Base(*inPath), *inPath)
	}

	cat, diags := catalog.LoadFile(*inPath, catalog.Options{Delimiter: cfg.Delimiter()})
	for _, d := range diags {
		log.Printf("WARN: %s", d)
	}

	courses := cat.SortedCourses()
	if err := export.WriteCatalogCSVFile(*outPath, courses); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d courses to %s%s", len(courses), *outPath, rejectionSummary(diags))

	artifact := *outPath
	if *compress {
		brPath, err := export.CompressFile(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("compressed to %s", brPath)
		artifact = brPath
	}

	if *uploadSFTP {
		remoteName := filepath.Base(artifact)

		upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFile(upCtx, sftpCfg, artifact, remoteName); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", sftpCfg.Host, sftpCfg.Port, sftpCfg.RemoteDir, remoteName)
	}
}

// rejectionSummary renders diagnostics as " (rejected: 2 duplicate-key, 1
// malformed)", empty when the load was clean.
func rejectionSummary(diags []catalog.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}

	counts := map[catalog.Reason]int{}
	for _, d := range diags {
		counts[d.Code]++
	}

	parts := make([]string, 0, len(counts))
	for code, n := range counts {
		parts = append(parts, fmt.Sprintf("%d %s", n, code))
	}
	sort.Strings(parts)

	return " (rejected: " + strings.Join(parts, ", ") + ")"
}
