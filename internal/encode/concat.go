package encode

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// writeConcatList materializes the ffmpeg concat-demuxer manifest for the
// given files. The returned cleanup removes the file and must run on every
// exit path.
func writeConcatList(files []string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "mkmovies-*.txt")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		_ = os.Remove(tmp.Name())
	}

	writer := bufio.NewWriter(tmp)
	for _, file := range files {
		if _, err := fmt.Fprintf(writer, "file '%s'\n", escapeConcatPath(file)); err != nil {
			_ = tmp.Close()
			cleanup()
			return "", nil, err
		}
	}
	if err := writer.Flush(); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return tmp.Name(), cleanup, nil
}

// escapeConcatPath quotes a path for a single-quoted concat directive.
// ffmpeg's syntax has no escape inside quotes, so a literal quote is written
// as '\'' (close, escaped quote, reopen).
func escapeConcatPath(path string) string {
	return strings.ReplaceAll(path, "'", `'\''`)
}
