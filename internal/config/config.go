// Package config loads morphfix settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/morph"
	"honnef.co/go/morph/internal/logger"
)

// Config holds the settings shared by all morphfix commands.
type Config struct {
	SubPath       int
	DistanceScale float64
	Workers       int
	Strict        bool
	Log           logger.Config
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		SubPath:       0,
		DistanceScale: 1,
		Workers:       1,
		Log:           logger.Config{Level: slog.LevelInfo, Format: logger.FormatText},
	}
}

// Error reports a configuration file that couldn't be read or is invalid.
type Error struct {
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load reads the file at path. Settings missing from the file keep their
// [Default] values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	return parse(path, b)
}

func parse(path string, b []byte) (Config, error) {
	var dto yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &Error{Path: path, Err: err}
	}
	return mapConfig(path, dto)
}

func mapConfig(path string, dto yamlConfig) (Config, error) {
	cfg := Default()
	fail := func(field string, format string, args ...any) (Config, error) {
		return Config{}, &Error{Path: path, Field: field, Err: fmt.Errorf(format, args...)}
	}

	if dto.SubPath != nil {
		if *dto.SubPath < 0 {
			return fail("subpath", "must not be negative, got %d", *dto.SubPath)
		}
		cfg.SubPath = *dto.SubPath
	}

	switch {
	case dto.Viewport != nil && dto.DistanceScale != nil:
		return fail("viewport", "cannot be combined with distance_scale")
	case dto.Viewport != nil:
		if dto.Viewport.Width < 0 || dto.Viewport.Height < 0 {
			return fail("viewport", "dimensions must not be negative, got %gx%g", dto.Viewport.Width, dto.Viewport.Height)
		}
		cfg.DistanceScale = morph.ScaleForViewport(dto.Viewport.Width, dto.Viewport.Height)
	case dto.DistanceScale != nil:
		if *dto.DistanceScale <= 0 {
			return fail("distance_scale", "must be positive, got %g", *dto.DistanceScale)
		}
		cfg.DistanceScale = *dto.DistanceScale
	}

	if dto.Workers != nil {
		if *dto.Workers < 0 {
			return fail("workers", "must not be negative, got %d", *dto.Workers)
		}
		cfg.Workers = *dto.Workers
	}
	if dto.Strict != nil {
		cfg.Strict = *dto.Strict
	}

	if dto.Log.Level != "" {
		l, err := logger.ParseLevel(dto.Log.Level)
		if err != nil {
			return Config{}, &Error{Path: path, Field: "log.level", Err: err}
		}
		cfg.Log.Level = l
	}
	if dto.Log.Format != "" {
		f, err := logger.ParseFormat(dto.Log.Format)
		if err != nil {
			return Config{}, &Error{Path: path, Field: "log.format", Err: err}
		}
		cfg.Log.Format = f
	}
	return cfg, nil
}

// Options returns the reconciliation options described by cfg.
func (cfg Config) Options(log *slog.Logger) morph.Options {
	return morph.Options{
		DistanceScale: cfg.DistanceScale,
		Workers:       cfg.Workers,
		Strict:        cfg.Strict,
		Logger:        log,
	}
}
