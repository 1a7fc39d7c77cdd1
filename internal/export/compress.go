package export

import (
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// CompressFile writes a brotli-compressed copy of path next to it and
// returns the new file's path (path + ".br"). The original is left as is.
func CompressFile(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("export: open %s: %w", path, err)
	}
	defer src.Close()

	outPath := path + ".br"
	dst, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", outPath, err)
	}

	bw := brotli.NewWriter(dst)
	if _, err := io.Copy(bw, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("export: compress %s: %w", path, err)
	}
	// Close flushes the brotli stream before the file closes.
	if err := bw.Close(); err != nil {
		dst.Close()
		return "", fmt.Errorf("export: finish %s: %w", outPath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", outPath, err)
	}

	return outPath, nil
}
