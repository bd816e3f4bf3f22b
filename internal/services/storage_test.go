package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alfredoptarigan/resume-ats/internal/config"
)

func TestLocalStorageSave(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewStorageService(context.Background(), config.StorageConfig{Driver: "local", UploadPath: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := []byte("%PDF-1.4 test")
	location, err := store.Save(context.Background(), "My Resume.PDF", data, "application/pdf")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if filepath.Dir(location) != dir {
		t.Fatalf("file saved outside upload dir: %s", location)
	}
	base := filepath.Base(location)
	if !strings.HasPrefix(base, "resume_") || !strings.HasSuffix(base, ".pdf") {
		t.Fatalf("unexpected filename %s", base)
	}

	got, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("stored content mismatch: %q", got)
	}
}

func TestStorageDrivers(t *testing.T) {
	t.Parallel()

	none, err := NewStorageService(context.Background(), config.StorageConfig{Driver: "none"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location, err := none.Save(context.Background(), "a.pdf", []byte("x"), "application/pdf"); err != nil || location != "" {
		t.Fatalf("none driver should discard silently, got %q, %v", location, err)
	}

	if _, err := NewStorageService(context.Background(), config.StorageConfig{Driver: "ftp"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}

	if _, err := NewStorageService(context.Background(), config.StorageConfig{Driver: "s3"}); err == nil {
		t.Fatal("expected error for s3 without a bucket")
	}
}
