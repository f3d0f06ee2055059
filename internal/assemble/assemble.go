package assemble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mkmovies/internal/cluster"
	"mkmovies/internal/config"
	"mkmovies/internal/journal"
	"mkmovies/internal/logging"
	"mkmovies/internal/scan"
)

// lockFileName is created in the target directory for the duration of a run.
const lockFileName = ".mkmovies.lock"

// Encoder is the external video encoder collaborator.
type Encoder interface {
	Encode(ctx context.Context, files []string, outputPath string) error
}

// Options control a single run.
type Options struct {
	// FailFast aborts the batch on the first encode failure instead of
	// continuing with the remaining groups.
	FailFast bool
	// DryRun plans groups and output names without invoking the encoder.
	DryRun bool
}

// MovieResult is the outcome of one group's encode attempt.
type MovieResult struct {
	Seq    int
	Frames int
	Start  time.Time
	End    time.Time
	Output string
	Err    error
}

// Result summarizes a run.
type Result struct {
	RunID      string
	Directory  string
	Scanned    int
	Movies     []MovieResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Encoded returns the number of successfully encoded movies.
func (r *Result) Encoded() int {
	count := 0
	for _, movie := range r.Movies {
		if movie.Err == nil {
			count++
		}
	}
	return count
}

// Failed returns the number of groups whose encode failed.
func (r *Result) Failed() int {
	return len(r.Movies) - r.Encoded()
}

// Assembler wires the scan, cluster, and encode steps together.
type Assembler struct {
	cfg     *config.Config
	logger  *slog.Logger
	encoder Encoder
	store   *journal.Store
}

// New constructs an assembler. The journal store may be nil.
func New(cfg *config.Config, logger *slog.Logger, encoder Encoder, store *journal.Store) (*Assembler, error) {
	if cfg == nil || encoder == nil {
		return nil, errors.New("assembler requires config and encoder")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Assembler{cfg: cfg, logger: logger, encoder: encoder, store: store}, nil
}

// Run processes dir once. Per-group encode failures are recorded in the
// result and, unless opts.FailFast is set, do not fail the run.
func (a *Assembler) Run(ctx context.Context, dir string, opts Options) (*Result, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Directory: absDir,
		StartedAt: time.Now(),
	}

	lock := flock.New(filepath.Join(absDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another mkmovies run is already processing %s", absDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			a.logger.Warn("failed to release run lock", logging.Args(logging.Error(err))...)
		}
	}()

	images, err := scan.Images(absDir, a.cfg.Scan.Extensions)
	if err != nil {
		return nil, err
	}
	result.Scanned = len(images)

	if len(images) == 0 {
		a.logger.Info("no images found, nothing to encode",
			logging.Args(logging.String("directory", absDir))...)
		a.finish(ctx, result)
		return result, nil
	}

	groups := cluster.Cluster(images, a.cfg.MaxGap())
	a.logger.Info("clustered images",
		logging.Args(
			logging.Int("images", len(images)),
			logging.Int("groups", len(groups)),
			logging.Duration("max_gap", a.cfg.MaxGap()),
		)...)

	var failFastErr error
	for i, group := range groups {
		movie := MovieResult{
			Seq:    i + 1,
			Frames: len(group.Images),
			Start:  group.Start(),
			End:    group.End(),
			Output: filepath.Join(absDir, a.OutputName(i+1)),
		}

		if opts.DryRun {
			result.Movies = append(result.Movies, movie)
			continue
		}

		files := make([]string, 0, len(group.Images))
		for _, img := range group.Images {
			files = append(files, img.Path)
		}

		a.logger.Info("assembling movie",
			logging.Args(
				logging.Int("seq", movie.Seq),
				logging.Int("frames", movie.Frames),
				logging.String("output", movie.Output),
			)...)
		if err := a.encoder.Encode(ctx, files, movie.Output); err != nil {
			movie.Err = err
			a.logger.Error("encode failed",
				logging.Args(
					logging.Int("seq", movie.Seq),
					logging.String("output", movie.Output),
					logging.Error(err),
				)...)
			if opts.FailFast {
				result.Movies = append(result.Movies, movie)
				failFastErr = fmt.Errorf("encode group %d: %w", movie.Seq, err)
				break
			}
		}
		result.Movies = append(result.Movies, movie)
	}

	a.finish(ctx, result)
	return result, failFastErr
}

// OutputName returns the file name for the group with the given 1-based
// sequence number, e.g. movie_001.mp4.
func (a *Assembler) OutputName(seq int) string {
	return OutputName(a.cfg.Encoder.OutputPrefix, a.cfg.Encoder.Container, seq)
}

// OutputName formats a zero-padded movie file name for a 1-based sequence
// number. Numbering is a pure function of group order.
func OutputName(prefix, container string, seq int) string {
	return fmt.Sprintf("%s_%03d.%s", prefix, seq, container)
}

// finish stamps the result and records it in the journal when one is
// configured. Journal failures are logged, never fatal.
func (a *Assembler) finish(ctx context.Context, result *Result) {
	result.FinishedAt = time.Now()
	if a.store == nil {
		return
	}

	run := journal.Run{
		ID:         result.RunID,
		Directory:  result.Directory,
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
		Scanned:    result.Scanned,
		Groups:     len(result.Movies),
		Encoded:    result.Encoded(),
		Failed:     result.Failed(),
	}
	for _, movie := range result.Movies {
		entry := journal.Movie{
			Seq:    movie.Seq,
			Frames: movie.Frames,
			Start:  movie.Start,
			End:    movie.End,
			Output: movie.Output,
		}
		if movie.Err != nil {
			entry.Error = movie.Err.Error()
		}
		run.Movies = append(run.Movies, entry)
	}

	if err := a.store.RecordRun(ctx, run); err != nil {
		a.logger.Warn("failed to record run in journal", logging.Args(logging.Error(err))...)
	}
}
