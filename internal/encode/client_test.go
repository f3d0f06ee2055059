package encode

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

type fakeExecutor struct {
	binary      string
	args        []string
	listContent string
	listPath    string
	output      []string
	err         error
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string, onOutput func(string)) error {
	f.binary = binary
	f.args = args

	// Capture the concat list before Encode's deferred cleanup removes it.
	for i, arg := range args {
		if arg == "-i" && i+1 < len(args) {
			f.listPath = args[i+1]
			data, err := os.ReadFile(f.listPath)
			if err != nil {
				return err
			}
			f.listContent = string(data)
		}
	}
	for _, line := range f.output {
		onOutput(line)
	}
	return f.err
}

func TestNewValidatesArguments(t *testing.T) {
	if _, err := New("", 4, 0); err == nil {
		t.Fatal("expected error for empty binary")
	}
	if _, err := New("ffmpeg", 0, 0); err == nil {
		t.Fatal("expected error for zero frame rate")
	}
	if _, err := New("ffmpeg", -2, 0); err == nil {
		t.Fatal("expected error for negative frame rate")
	}
}

func TestEncodeBuildsConcatInvocation(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := New("ffmpeg", 4, time.Minute, WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	files := []string{"/shots/burst01.jpg", "/shots/bird's eye.jpg"}
	if err := client.Encode(context.Background(), files, "/shots/movie_001.mp4"); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	if exec.binary != "ffmpeg" {
		t.Fatalf("unexpected binary: %q", exec.binary)
	}
	joined := strings.Join(exec.args, " ")
	if !strings.Contains(joined, "-f concat -safe 0 -r 4") {
		t.Fatalf("unexpected args: %v", exec.args)
	}
	if exec.args[len(exec.args)-1] != "/shots/movie_001.mp4" {
		t.Fatalf("output path must be the final argument, got %v", exec.args)
	}

	wantList := "file '/shots/burst01.jpg'\n" + `file '/shots/bird'\''s eye.jpg'` + "\n"
	if exec.listContent != wantList {
		t.Fatalf("concat list mismatch:\ngot  %q\nwant %q", exec.listContent, wantList)
	}
}

func TestEncodeRemovesConcatListAfterRun(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := New("ffmpeg", 4, 0, WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := client.Encode(context.Background(), []string{"a.jpg"}, "out.mp4"); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if _, err := os.Stat(exec.listPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("concat list %s should be removed, stat err: %v", exec.listPath, err)
	}
}

func TestEncodeRemovesConcatListOnFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	client, err := New("ffmpeg", 4, 0, WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := client.Encode(context.Background(), []string{"a.jpg"}, "out.mp4"); err == nil {
		t.Fatal("expected encode failure")
	}
	if _, err := os.Stat(exec.listPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("concat list %s should be removed after failure, stat err: %v", exec.listPath, err)
	}
}

func TestEncodeErrorCarriesOutputTail(t *testing.T) {
	exec := &fakeExecutor{
		err:    errors.New("exit status 1"),
		output: []string{"", "Unsupported pixel format", "Conversion failed!"},
	}
	client, err := New("ffmpeg", 4, 0, WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	encodeErr := client.Encode(context.Background(), []string{"a.jpg"}, "out.mp4")
	if encodeErr == nil {
		t.Fatal("expected encode failure")
	}
	if !strings.Contains(encodeErr.Error(), "Conversion failed!") {
		t.Fatalf("error should carry encoder output, got %q", encodeErr)
	}
	if !strings.Contains(encodeErr.Error(), "out.mp4") {
		t.Fatalf("error should name the output, got %q", encodeErr)
	}
}

func TestEncodeRejectsEmptyInput(t *testing.T) {
	client, err := New("ffmpeg", 4, 0, WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := client.Encode(context.Background(), nil, "out.mp4"); err == nil {
		t.Fatal("expected error for empty file list")
	}
	if err := client.Encode(context.Background(), []string{"a.jpg"}, " "); err == nil {
		t.Fatal("expected error for blank output path")
	}
}

func TestOutputTailKeepsLastLines(t *testing.T) {
	tail := newOutputTail(2)
	tail.add("one")
	tail.add("two")
	tail.add("three")
	if got := tail.String(); got != "two; three" {
		t.Fatalf("unexpected tail: %q", got)
	}
}
