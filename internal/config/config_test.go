package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mkmovies/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd returned error: %v", err)
	}
	if err := os.Chdir(tempHome); err != nil {
		t.Fatalf("Chdir returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if got := cfg.MaxGap(); got != 30*time.Second {
		t.Fatalf("unexpected default max gap: %s", got)
	}
	if cfg.Encoder.Binary != "ffmpeg" {
		t.Fatalf("unexpected encoder binary: %q", cfg.Encoder.Binary)
	}
	if cfg.Encoder.FrameRate != 4 {
		t.Fatalf("unexpected frame rate: %d", cfg.Encoder.FrameRate)
	}
	if cfg.Encoder.Container != "mp4" || cfg.Encoder.OutputPrefix != "movie" {
		t.Fatalf("unexpected output naming: %q.%q", cfg.Encoder.OutputPrefix, cfg.Encoder.Container)
	}
	if cfg.Journal.Enabled {
		t.Fatal("expected journal disabled by default")
	}
	if cfg.Journal.Path != filepath.Join(tempHome, ".local", "share", "mkmovies", "history.db") {
		t.Fatalf("unexpected journal path: %q", cfg.Journal.Path)
	}
	if len(cfg.Scan.Extensions) != 2 || cfg.Scan.Extensions[0] != ".jpg" {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "mkmovies.toml")
	doc := `
[scan]
extensions = ["PNG", ".Jpg"]

[cluster]
max_gap_seconds = 2.5

[encoder]
container = ".MKV"
frame_rate = 24
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if got := cfg.MaxGap(); got != 2500*time.Millisecond {
		t.Fatalf("unexpected max gap: %s", got)
	}
	if cfg.Scan.Extensions[0] != ".png" || cfg.Scan.Extensions[1] != ".jpg" {
		t.Fatalf("extensions not canonicalized: %v", cfg.Scan.Extensions)
	}
	if cfg.Encoder.Container != "mkv" {
		t.Fatalf("container not canonicalized: %q", cfg.Encoder.Container)
	}
	if cfg.Encoder.FrameRate != 24 {
		t.Fatalf("unexpected frame rate: %d", cfg.Encoder.FrameRate)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Encoder.Binary != "ffmpeg" {
		t.Fatalf("unexpected binary: %q", cfg.Encoder.Binary)
	}
}

func TestLoadHonoursFFmpegEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MKMOVIES_FFMPEG", "/opt/ffmpeg/bin/ffmpeg")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Encoder.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("env override ignored: %q", cfg.Encoder.Binary)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative gap", func(c *config.Config) { c.Cluster.MaxGapSeconds = -1 }},
		{"zero frame rate", func(c *config.Config) { c.Encoder.FrameRate = 0 }},
		{"empty binary", func(c *config.Config) { c.Encoder.Binary = "" }},
		{"bad container", func(c *config.Config) { c.Encoder.Container = "mp4/x" }},
		{"bad prefix", func(c *config.Config) { c.Encoder.OutputPrefix = "out/movie" }},
		{"no extensions", func(c *config.Config) { c.Scan.Extensions = nil }},
		{"journal without path", func(c *config.Config) { c.Journal.Enabled = true; c.Journal.Path = "" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *config.Config) { c.Logging.Format = "yaml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestSampleConfigRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(config.SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to be read")
	}
	defaults := config.Default()
	if cfg.Cluster.MaxGapSeconds != defaults.Cluster.MaxGapSeconds {
		t.Fatalf("sample max gap %v differs from default %v", cfg.Cluster.MaxGapSeconds, defaults.Cluster.MaxGapSeconds)
	}
	if cfg.Encoder.FrameRate != defaults.Encoder.FrameRate {
		t.Fatalf("sample frame rate %d differs from default %d", cfg.Encoder.FrameRate, defaults.Encoder.FrameRate)
	}
}
