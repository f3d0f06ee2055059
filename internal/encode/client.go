package encode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onOutput func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary    string
	frameRate int
	timeout   time.Duration
	exec      Executor
}

// New constructs an ffmpeg client.
func New(binary string, frameRate int, timeout time.Duration, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("encoder binary required")
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", frameRate)
	}
	client := &Client{
		binary:    binary,
		frameRate: frameRate,
		timeout:   timeout,
		exec:      commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// LookPath reports whether the configured binary can be resolved on PATH.
func (c *Client) LookPath() error {
	if strings.ContainsRune(c.binary, '/') {
		return nil
	}
	if _, err := exec.LookPath(c.binary); err != nil {
		return fmt.Errorf("encoder binary %q not found on PATH: %w", c.binary, err)
	}
	return nil
}

// Encode assembles the given image files, in order, into outputPath. A
// non-zero encoder exit is returned as an error carrying the tail of the
// encoder's output; the caller decides whether the batch continues.
func (c *Client) Encode(ctx context.Context, files []string, outputPath string) error {
	if len(files) == 0 {
		return errors.New("encode requires at least one input file")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}

	listPath, cleanup, err := writeConcatList(files)
	if err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	defer cleanup()

	encodeCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		encodeCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{
		"-hide_banner", "-nostdin", "-loglevel", "error", "-y",
		"-f", "concat", "-safe", "0",
		"-r", strconv.Itoa(c.frameRate),
		"-i", listPath,
		"-pix_fmt", "yuv420p",
		outputPath,
	}

	tail := newOutputTail(12)
	if err := c.exec.Run(encodeCtx, c.binary, args, tail.add); err != nil {
		if detail := tail.String(); detail != "" {
			return fmt.Errorf("encode %s: %w: %s", outputPath, err, detail)
		}
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	return nil
}

// outputTail retains the last few encoder output lines for error reporting.
type outputTail struct {
	mu    sync.Mutex
	limit int
	lines []string
}

func newOutputTail(limit int) *outputTail {
	return &outputTail{limit: limit}
}

func (t *outputTail) add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

func (t *outputTail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "; ")
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	forward := func(line string) {
		if onOutput != nil {
			onOutput(line)
		}
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			forward(scanner.Text())
		}
	}
	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("command interrupted: %w", ctx.Err())
		}
		return err
	}
	return nil
}
