// Package config loads solver and server settings from the environment,
// optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/reindeer/stategraph"
)

// Environment variable names.
const (
	EnvTurnCost    = "REINDEER_TURN_COST"
	EnvMoveCost    = "REINDEER_MOVE_COST"
	EnvStartFacing = "REINDEER_START_FACING"
	EnvConcurrent  = "REINDEER_CONCURRENT"
	EnvHTTPAddr    = "REINDEER_HTTP_ADDR"
	EnvGinMode     = "GIN_MODE"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed
// or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	TurnCost    int64             // Cost of a 90° turn
	MoveCost    int64             // Cost of a forward step
	StartFacing stategraph.Facing // Initial facing at the start marker
	Concurrent  bool              // Run forward and backward searches in parallel
	HTTPAddr    string            // Listen address for the HTTP API
	GinMode     string            // Mode for the Gin framework (release, debug, test)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TurnCost:    stategraph.DefaultTurnCost,
		MoveCost:    stategraph.DefaultMoveCost,
		StartFacing: stategraph.Right,
		Concurrent:  false,
		HTTPAddr:    ":8080",
		GinMode:     "release",
	}
}

// Load reads .env files (default ".env") into the process environment,
// without overriding variables that are already set, then builds a Config
// from the environment on top of Default. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
		log.Printf("[APP] [INFO] loaded environment from %s", f)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error
	if cfg.TurnCost, err = costFromEnv(EnvTurnCost, cfg.TurnCost); err != nil {
		return Config{}, err
	}
	if cfg.MoveCost, err = costFromEnv(EnvMoveCost, cfg.MoveCost); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvStartFacing); ok {
		f, perr := stategraph.ParseFacing(v)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvStartFacing, perr)
		}
		cfg.StartFacing = f
	}
	if v, ok := lookup(EnvConcurrent); ok {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvConcurrent, v)
		}
		cfg.Concurrent = b
	}
	if v, ok := lookup(EnvHTTPAddr); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup(EnvGinMode); ok {
		cfg.GinMode = v
	}

	return cfg, nil
}

// Validate checks value ranges, for configurations assembled by hand or
// overridden by flags.
func (c Config) Validate() error {
	if c.TurnCost < 0 {
		return fmt.Errorf("%w: turn cost %d is negative", ErrInvalidValue, c.TurnCost)
	}
	if c.MoveCost < 0 {
		return fmt.Errorf("%w: move cost %d is negative", ErrInvalidValue, c.MoveCost)
	}
	if !c.StartFacing.Valid() {
		return fmt.Errorf("%w: start facing %v", ErrInvalidValue, c.StartFacing)
	}

	return nil
}

// GraphOptions returns the stategraph options matching c.
func (c Config) GraphOptions() []stategraph.Option {
	return []stategraph.Option{
		stategraph.WithTurnCost(c.TurnCost),
		stategraph.WithMoveCost(c.MoveCost),
	}
}

// lookup returns a trimmed, non-empty environment value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}

func costFromEnv(key string, def int64) (int64, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalidValue, key, v)
	}

	return n, nil
}
