package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"course-catalog/internal/catalog"
	"course-catalog/internal/config"
	"course-catalog/internal/export"
	"course-catalog/internal/sftpclient"
)

func main() {
	cfg := config.Load()

	var (
		inPath     = flag.String("in", cfg.CourseFile, "course data file")
		outPath    = flag.String("out", "CATALOG.xml", "output xml path")
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

	cat, diags := catalog.LoadFile(*inPath, catalog.Options{Delimiter: cfg.Delimiter()})
	for _, d := range diags {
		log.Printf("WARN: %s", d)
	}

	courses := cat.SortedCourses()
	if err := export.WriteCatalogXML(*outPath, courses); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d courses to %s (%d rows rejected)", len(courses), *outPath, len(diags))

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
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		remoteName := filepath.Base(artifact)

		upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFile(upCtx, upCfg, artifact, remoteName); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	}
}
