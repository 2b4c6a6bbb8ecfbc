package config

import (
	"encoding/json"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for environment overrides, e.g. RECORDER_FPS=60.
const EnvPrefix = "recorder"

// Config holds runtime configuration for a recording run.
// Values resolve in order: defaults, an optional JSON config file,
// RECORDER_* environment variables, then command-line flags.
type Config struct {
	Debug bool `json:"debug" envconfig:"DEBUG"`

	// Capture parameters
	Monitor int     `json:"monitor" envconfig:"MONITOR"`
	FPS     float64 `json:"fps" envconfig:"FPS"`

	// Cursor overlay parameters
	CursorPath string `json:"cursor_path" envconfig:"CURSOR_PATH"`
	CursorSize int    `json:"cursor_size" envconfig:"CURSOR_SIZE"`
	NoCursor   bool   `json:"no_cursor" envconfig:"NO_CURSOR"`

	// Output parameters
	OutputPath string `json:"output_path" envconfig:"OUTPUT_PATH"`
	FFmpegPath string `json:"ffmpeg_path" envconfig:"FFMPEG_PATH"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:      false,
		Monitor:    1,
		FPS:        30.0,
		CursorPath: "cursor.png",
		CursorSize: 32,
		NoCursor:   false,
		OutputPath: "screen_record.mp4",
		FFmpegPath: "ffmpeg",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		c.FPS = 30.0
	}
	if c.FPS > 240 {
		c.FPS = 240
	}
	if c.CursorSize < 1 {
		c.CursorSize = 32
	}
	if c.CursorSize > 512 {
		c.CursorSize = 512
	}
	if c.CursorPath == "" {
		c.CursorPath = "cursor.png"
	}
	if c.OutputPath == "" {
		c.OutputPath = "screen_record.mp4"
	}
	if c.FFmpegPath == "" {
		c.FFmpegPath = "ffmpeg"
	}
	return nil
}

// FromEnv applies RECORDER_* environment variables on top of the receiver.
func (c *Config) FromEnv() error {
	return envconfig.Process(EnvPrefix, c)
}

// CursorPathExplicit reports whether the user supplied the cursor path
// through any layer: the flag, the environment, or a config file. A missing
// explicit cursor is a setup error, while the built-in default is allowed to
// be absent. flagSet covers the case of the flag restating the default path.
func (c *Config) CursorPathExplicit(flagSet bool) bool {
	return flagSet || c.CursorPath != DefaultConfig().CursorPath
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
