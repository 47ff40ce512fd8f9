package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/imageio"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid")

// Patterns lists the diagnostic images the testcard command can draw.
var Patterns = []string{"normals", "fresnel", "sphere", "gradient", "envmap"}

// Config holds output paths and render settings.
type Config struct {
	// Paths
	Output   string `json:"output"`
	Manifest string `json:"manifest"`
	EnvMap   string `json:"env_map"` // input image for the envmap pattern

	// Render settings
	Pattern     string  `json:"pattern"`
	Cols        int     `json:"cols"`
	Rows        int     `json:"rows"`
	Samples     int     `json:"samples"`
	Supersample int     `json:"supersample"`
	Seed        uint64  `json:"seed"`
	Workers     int     `json:"workers"`
	Gamma       float32 `json:"gamma"`
	Exposure    float32 `json:"exposure"`
	ACES        bool    `json:"aces"`
	RefIdx      float32 `json:"ref_idx"`
	Tilt        float32 `json:"tilt"` // degrees about X applied to pattern directions
	Quality     int     `json:"quality"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides, then fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty, or, for Seed and Tilt
// where zero is meaningful, when non-nil.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.EnvMap != "" {
		c.EnvMap = flags.EnvMap
	}
	if flags.Cols > 0 {
		c.Cols = flags.Cols
	}
	if flags.Rows > 0 {
		c.Rows = flags.Rows
	}
	if flags.Samples > 0 {
		c.Samples = flags.Samples
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Seed != nil {
		c.Seed = *flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Gamma > 0 {
		c.Gamma = flags.Gamma
	}
	if flags.Exposure > 0 {
		c.Exposure = flags.Exposure
	}
	if flags.ACES {
		c.ACES = true
	}
	if flags.RefIdx > 0 {
		c.RefIdx = flags.RefIdx
	}
	if flags.Tilt != nil {
		c.Tilt = *flags.Tilt
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}

	// Defaults
	if c.Output == "" {
		c.Output = "testcard.png"
	}
	if c.Pattern == "" {
		c.Pattern = "normals"
	}
	if c.Cols <= 0 {
		c.Cols = 256
	}
	if c.Rows <= 0 {
		c.Rows = c.Cols
	}
	if c.Samples <= 0 {
		c.Samples = 8
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Gamma <= 0 {
		c.Gamma = 2.2
	}
	if c.Exposure <= 0 {
		c.Exposure = 1
	}
	if c.RefIdx <= 0 {
		c.RefIdx = 1.5
	}
}

// Validate reports settings the renderer cannot honor.
func (c *Config) Validate() error {
	if !slices.Contains(Patterns, c.Pattern) {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalid, c.Pattern)
	}
	if _, err := imageio.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("%w: output %s: %v", ErrInvalid, c.Output, err)
	}
	if c.Pattern == "envmap" && c.EnvMap == "" {
		return fmt.Errorf("%w: envmap pattern needs env_map", ErrInvalid)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
// Seed and Tilt are nil when the flag was not given.
type Flags struct {
	Output      string
	Pattern     string
	EnvMap      string
	Cols        int
	Rows        int
	Samples     int
	Supersample int
	Seed        *uint64
	Workers     int
	Gamma       float32
	Exposure    float32
	ACES        bool
	RefIdx      float32
	Tilt        *float32
	Quality     int
}
