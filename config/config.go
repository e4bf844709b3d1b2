// Package config loads runtime settings for the maze binaries from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazes/builder"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed
// or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr        = "MAZES_ADDR"
	EnvDefaultSize = "MAZES_DEFAULT_SIZE"
	EnvMaxCells    = "MAZES_MAX_CELLS"
	EnvCellPixels  = "MAZES_CELL_PIXELS"
	EnvAlgorithm   = "MAZES_ALGORITHM"
	EnvTextLimit   = "MAZES_TEXT_LIMIT"
)

// Config holds the settings shared by the CLI and the HTTP service.
type Config struct {
	Addr        string            // listen address of the HTTP service
	DefaultSize int               // side of a square maze when none is requested
	MaxCells    int               // largest rows·columns a request may ask for
	CellPixels  int               // cell side for image output
	Algorithm   builder.Algorithm // generator used when none is requested
	TextLimit   int               // sizes below this print as text by default
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:        ":8080",
		DefaultSize: 20,
		MaxCells:    250000,
		CellPixels:  10,
		Algorithm:   builder.RecursiveBacktrackerAlgorithm,
		TextLimit:   25,
	}
}

// Load reads the .env files named (".env" when none are), then overlays
// any MAZES_* variables on Default. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{EnvDefaultSize, &cfg.DefaultSize, 1},
		{EnvMaxCells, &cfg.MaxCells, 1},
		{EnvCellPixels, &cfg.CellPixels, 3},
		{EnvTextLimit, &cfg.TextLimit, 0},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, f.key, v)
		}
		if n < f.min {
			return Config{}, fmt.Errorf("%w: %s=%d is below %d", ErrInvalidValue, f.key, n, f.min)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvAlgorithm); ok {
		alg, err := builder.ParseAlgorithm(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvAlgorithm, err)
		}
		cfg.Algorithm = alg
	}

	return cfg, nil
}
