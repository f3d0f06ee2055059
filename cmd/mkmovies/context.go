package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"mkmovies/internal/assemble"
	"mkmovies/internal/config"
	"mkmovies/internal/encode"
	"mkmovies/internal/journal"
	"mkmovies/internal/logging"
)

type commandContext struct {
	configFlag *string
	gapFlag    *float64

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, gapFlag *float64) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		gapFlag:    gapFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.gapFlag != nil && *c.gapFlag >= 0 {
			cfg.Cluster.MaxGapSeconds = *c.gapFlag
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

// newAssembler builds the full pipeline and returns the encoder client so
// callers can run preflight checks. The returned closer releases the journal
// store when one is configured.
func (c *commandContext) newAssembler(cfg *config.Config, logger *slog.Logger) (*assemble.Assembler, *encode.Client, func(), error) {
	encoder, err := encode.New(cfg.Encoder.Binary, cfg.Encoder.FrameRate, cfg.EncoderTimeout())
	if err != nil {
		return nil, nil, nil, err
	}

	var store *journal.Store
	closer := func() {}
	if cfg.Journal.Enabled {
		store, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open journal: %w", err)
		}
		closer = func() { _ = store.Close() }
	}

	asm, err := assemble.New(cfg, logger, encoder, store)
	if err != nil {
		closer()
		return nil, nil, nil, err
	}
	return asm, encoder, closer, nil
}

func (c *commandContext) openJournal(cfg *config.Config) (*journal.Store, error) {
	if !cfg.Journal.Enabled {
		return nil, fmt.Errorf("journal is disabled; set journal.enabled = true in the config to record history")
	}
	return journal.Open(cfg.Journal.Path)
}

func targetDirectory(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return "."
}
