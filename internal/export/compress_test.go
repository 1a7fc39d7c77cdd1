package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestCompressFile(t *testing.T) {
	tempDir := t.TempDir()
	srcPath := filepath.Join(tempDir, "catalog.csv")

	original := bytes.Repeat([]byte("CS101,Intro to CS,\r\n"), 100)
	if err := os.WriteFile(srcPath, original, 0o644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	outPath, err := CompressFile(srcPath)
	if err != nil {
		t.Fatalf("CompressFile() error = %v", err)
	}
	if outPath != srcPath+".br" {
		t.Errorf("CompressFile() path = %q, want %q", outPath, srcPath+".br")
	}

	// Round-trip: decompressing must give the original bytes back
	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("Failed to open compressed file: %v", err)
	}
	defer f.Close()

	decoded, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		t.Fatalf("Failed to decompress: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("Decompressed content does not match the original")
	}

	// Repetitive input should actually shrink
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Failed to stat compressed file: %v", err)
	}
	if info.Size() >= int64(len(original)) {
		t.Errorf("Compressed size %d is not smaller than original %d", info.Size(), len(original))
	}
}

func TestCompressFileMissingSource(t *testing.T) {
	_, err := CompressFile(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected an error for a missing source file")
	}
}
