// Package config holds the numeric game policy and the robot assignment for a match.
//
// A Config is loaded once per game from a line-oriented KEY = VALUE file and is
// read-only afterwards. Keys that are absent keep their defaults.
package config

import (
	"fmt"
	"io"
	"os"
)

const (
	KeyHitDuration    = "HIT_DURATION"
	KeyPaintBlobLimit = "PAINTBLOB_LIMIT"
	KeyRockLower      = "ROCK_LOWER_BOUND"
	KeyRockUpper      = "ROCK_UPPER_BOUND"
	KeyFogLower       = "FOG_LOWER_BOUND"
	KeyFogUpper       = "FOG_UPPER_BOUND"
	KeyLongRangeLimit = "LONG_RANGE_LIMIT"
)

// Config is the game policy.
type Config struct {
	// HitDuration is the number of moves a hit robot paints the attacker's color.
	HitDuration int
	// PaintBlobLimit is the ammo each robot starts with.
	PaintBlobLimit int
	RockLowerBound int
	RockUpperBound int
	FogLowerBound  int
	FogUpperBound  int
	// LongRangeLimit caps how many long-range scans a robot receives per game.
	LongRangeLimit int
}

// Default returns the stock policy.
func Default() Config {
	return Config{
		HitDuration:    20,
		PaintBlobLimit: 30,
		RockLowerBound: 10,
		RockUpperBound: 20,
		FogLowerBound:  5,
		FogUpperBound:  10,
		LongRangeLimit: 30,
	}
}

// Validate checks that every value is positive and that both bound pairs are ordered.
func (c Config) Validate() error {
	for _, f := range c.fields() {
		if *f.ptr <= 0 {
			return &ValueError{Key: f.key, Value: fmt.Sprint(*f.ptr), Reason: "must be positive"}
		}
	}
	if c.RockLowerBound > c.RockUpperBound {
		return &BoundsError{Terrain: "rock", Lower: c.RockLowerBound, Upper: c.RockUpperBound}
	}
	if c.FogLowerBound > c.FogUpperBound {
		return &BoundsError{Terrain: "fog", Lower: c.FogLowerBound, Upper: c.FogUpperBound}
	}
	return nil
}

type field struct {
	key string
	ptr *int
}

// fields maps file keys onto c. The pointers alias c, so callers must pass a pointer
// receiver when they intend to write.
func (c *Config) fields() []field {
	return []field{
		{KeyHitDuration, &c.HitDuration},
		{KeyPaintBlobLimit, &c.PaintBlobLimit},
		{KeyRockLower, &c.RockLowerBound},
		{KeyRockUpper, &c.RockUpperBound},
		{KeyFogLower, &c.FogLowerBound},
		{KeyFogUpper, &c.FogUpperBound},
		{KeyLongRangeLimit, &c.LongRangeLimit},
	}
}

func (c *Config) lookup(key string) (*int, bool) {
	for _, f := range c.fields() {
		if f.key == key {
			return f.ptr, true
		}
	}
	return nil, false
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &FileError{Path: path, Err: err}
	}
	defer f.Close()
	return parse(path, f)
}

// Parse reads a config from r. Unset keys keep the values from Default.
func Parse(r io.Reader) (Config, error) {
	return parse("config", r)
}
