package config

const (
	defaultMaxGapSeconds  = 30.0
	defaultEncoderBinary  = "ffmpeg"
	defaultFrameRate      = 4
	defaultContainer      = "mp4"
	defaultOutputPrefix   = "movie"
	defaultEncodeTimeout  = 600
	defaultJournalEnabled = false
	defaultJournalPath    = "~/.local/share/mkmovies/history.db"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

func defaultExtensions() []string {
	return []string{".jpg", ".jpeg"}
}

// Default returns a Config populated with repository defaults. The gap
// threshold and frame rate match the original mkmovies constants.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions: defaultExtensions(),
		},
		Cluster: Cluster{
			MaxGapSeconds: defaultMaxGapSeconds,
		},
		Encoder: Encoder{
			Binary:         defaultEncoderBinary,
			FrameRate:      defaultFrameRate,
			Container:      defaultContainer,
			OutputPrefix:   defaultOutputPrefix,
			TimeoutSeconds: defaultEncodeTimeout,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
			Path:    defaultJournalPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
