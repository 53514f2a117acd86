// SPDX-License-Identifier: MIT

// Package config resolves scissors CLI settings from defaults, a YAML file
// and SCISSORS_* environment variables, in increasing precedence. Command
// flags are applied last by the CLI itself.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scissors/projection"
)

// DefaultEnvFile is read (when present) before the process environment.
const DefaultEnvFile = "scissors.env"

// Environment variable names.
const (
	EnvSolver    = "SCISSORS_SOLVER"
	EnvMode      = "SCISSORS_MODE"
	EnvCenter    = "SCISSORS_CENTER"
	EnvOverlap   = "SCISSORS_OVERLAP"
	EnvDim       = "SCISSORS_DIM" // sets every channel
	EnvShapeDim  = "SCISSORS_SHAPE_DIM"
	EnvColorDim  = "SCISSORS_COLOR_DIM"
	EnvChannels  = "SCISSORS_CHANNELS" // comma-separated
	EnvTolerance = "SCISSORS_TOLERANCE"
	EnvSeed      = "SCISSORS_SEED"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings shared by scissors subcommands.
type Config struct {
	Solver    string   `yaml:"solver"`    // "gonum" or "jacobi"
	Mode      string   `yaml:"mode"`      // "positive" or "imaginary"
	Center    bool     `yaml:"center"`    // double-center basis kernels
	Overlap   bool     `yaml:"overlap"`   // read <channel>_overlap instead of Tanimotos
	ShapeDim  int      `yaml:"shape_dim"` // projection.AllDims keeps everything
	ColorDim  int      `yaml:"color_dim"`
	Channels  []string `yaml:"channels"`
	Tolerance *float64 `yaml:"tolerance"` // nil selects the automatic threshold
	Seed      *uint64  `yaml:"seed"`      // nil samples nondeterministically
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver:   "gonum",
		Mode:     projection.ModePositive.String(),
		ShapeDim: projection.AllDims,
		ColorDim: projection.AllDims,
		Channels: []string{projection.ChannelShape, projection.ChannelColor},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with env. Unknown YAML keys are rejected.
func Load(path string, env map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err = cfg.decodeYAML(raw); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) decodeYAML(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ReadEnv merges the KEY=VALUE files (missing files are skipped) with the
// process environment; the process environment wins.
func ReadEnv(files ...string) (map[string]string, error) {
	env := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", f, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, "SCISSORS_") {
			env[k] = v
		}
	}

	return env, nil
}

// ApplyEnv overlays SCISSORS_* variables. SCISSORS_DIM is applied before the
// per-channel variables, which override it.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvSolver]; ok {
		c.Solver = v
	}
	if v, ok := env[EnvMode]; ok {
		c.Mode = v
	}
	if v, ok := env[EnvChannels]; ok {
		c.Channels = splitList(v)
	}
	for _, b := range []struct {
		key string
		dst *bool
	}{{EnvCenter, &c.Center}, {EnvOverlap, &c.Overlap}} {
		if v, ok := env[b.key]; ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return envErr(b.key, v)
			}
			*b.dst = parsed
		}
	}
	if v, ok := env[EnvDim]; ok {
		d, err := strconv.Atoi(v)
		if err != nil {
			return envErr(EnvDim, v)
		}
		c.ShapeDim, c.ColorDim = d, d
	}
	for _, d := range []struct {
		key string
		dst *int
	}{{EnvShapeDim, &c.ShapeDim}, {EnvColorDim, &c.ColorDim}} {
		if v, ok := env[d.key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return envErr(d.key, v)
			}
			*d.dst = parsed
		}
	}
	if v, ok := env[EnvTolerance]; ok {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envErr(EnvTolerance, v)
		}
		c.Tolerance = &tol
	}
	if v, ok := env[EnvSeed]; ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envErr(EnvSeed, v)
		}
		c.Seed = &seed
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, ok := projection.DecomposerByName(c.Solver); !ok {
		return fmt.Errorf("%w: solver %q", ErrInvalid, c.Solver)
	}
	if _, err := projection.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, d := range []int{c.ShapeDim, c.ColorDim} {
		if d < projection.AllDims {
			return fmt.Errorf("%w: dimension %d", ErrInvalid, d)
		}
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalid)
	}
	for _, ch := range c.Channels {
		if ch == "" {
			return fmt.Errorf("%w: empty channel name", ErrInvalid)
		}
	}
	if t := c.Tolerance; t != nil && (math.IsNaN(*t) || math.IsInf(*t, 0) || *t < 0) {
		return fmt.Errorf("%w: tolerance %g", ErrInvalid, *t)
	}

	return nil
}

// DimFor returns the maximum dimensionality configured for channel. Channels
// other than shape and color use ShapeDim.
func (c Config) DimFor(channel string) int {
	if channel == projection.ChannelColor {
		return c.ColorDim
	}

	return c.ShapeDim
}

// ProjectionOptions translates the numeric settings into model options.
func (c Config) ProjectionOptions() ([]projection.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dec, _ := projection.DecomposerByName(c.Solver)
	mode, _ := projection.ParseMode(c.Mode)
	opts := []projection.Option{projection.WithDecomposer(dec), projection.WithMode(mode)}
	if c.Center {
		opts = append(opts, projection.WithCenter())
	}
	if c.Tolerance != nil {
		opts = append(opts, projection.WithEigenTolerance(*c.Tolerance))
	}

	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func envErr(key, val string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalid, key, val)
}
