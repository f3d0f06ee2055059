package scan_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mkmovies/internal/scan"
)

var jpegExtensions = []string{".jpg", ".jpeg"}

func writeImage(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImagesFiltersAndSortsByModTime(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2016, time.May, 9, 9, 57, 53, 0, time.UTC)

	newest := writeImage(t, dir, "c.jpg", base.Add(2*time.Second))
	oldest := writeImage(t, dir, "b.JPG", base)
	middle := writeImage(t, dir, "a.jpeg", base.Add(time.Second))
	writeImage(t, dir, "notes.txt", base)
	writeImage(t, dir, ".hidden.jpg", base)
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	images, err := scan.Images(dir, jpegExtensions)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}

	want := []string{oldest, middle, newest}
	if len(images) != len(want) {
		t.Fatalf("expected %d images, got %d", len(want), len(images))
	}
	for i, img := range images {
		if img.Path != want[i] {
			t.Fatalf("image %d: got %q want %q", i, img.Path, want[i])
		}
	}
}

func TestImagesTieBreaksByFilename(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Date(2016, time.May, 9, 9, 58, 8, 934810045, time.UTC)

	second := writeImage(t, dir, "burst02.jpg", mtime)
	first := writeImage(t, dir, "burst01.jpg", mtime)

	images, err := scan.Images(dir, jpegExtensions)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if images[0].Path != first || images[1].Path != second {
		t.Fatalf("identical timestamps must sort by name: got %q then %q", images[0].Path, images[1].Path)
	}
}

func TestImagesEmptyDirectory(t *testing.T) {
	images, err := scan.Images(t.TempDir(), jpegExtensions)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %d", len(images))
	}
}

func TestImagesRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeImage(t, dir, "x.jpg", time.Now())

	if _, err := scan.Images(file, jpegExtensions); err == nil {
		t.Fatal("expected error for non-directory path")
	}
	if _, err := scan.Images(filepath.Join(dir, "missing"), jpegExtensions); err == nil {
		t.Fatal("expected error for missing path")
	}
}
