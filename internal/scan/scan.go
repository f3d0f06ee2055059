// Package scan discovers image files for the clustering pass.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mkmovies/internal/cluster"
)

// Images lists the image files directly inside dir whose extension matches
// one of the provided extensions (lower-case, leading dot). Subdirectories
// are not entered and dotfiles are skipped. The result is sorted by
// modification time with the filename as a stable secondary key, so images
// sharing a timestamp keep a deterministic lexicographic order.
func Images(dir string, extensions []string) ([]cluster.Image, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	images := make([]cluster.Image, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			// Raced with a deletion; the file is gone, not an error.
			continue
		}
		images = append(images, cluster.Image{
			Path:    filepath.Join(dir, name),
			ModTime: fi.ModTime(),
		})
	}

	sort.Slice(images, func(i, j int) bool {
		if images[i].ModTime.Equal(images[j].ModTime) {
			return images[i].Path < images[j].Path
		}
		return images[i].ModTime.Before(images[j].ModTime)
	})

	return images, nil
}
