// Package config loads optional YAML configuration for the interpreter's
// resource limits, so embedders (and the CLI) can tune them without
// recompiling.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// EvaluatorOptions mirrors evaluator.Options in a YAML-friendly shape.
type EvaluatorOptions struct {
	MaxLoopIterations int `yaml:"maxLoopIterations"`
	MaxCallDepth      int `yaml:"maxCallDepth"`
}

// LexerOptions reserves a slot for future lexer-level tuning (e.g. a source
// size cap); it carries no fields yet.
type LexerOptions struct{}

// Config is the root of the optional on-disk configuration file.
type Config struct {
	Evaluator EvaluatorOptions `yaml:"evaluator"`
	Lexer     LexerOptions     `yaml:"lexer"`
}

// Default returns a Config with the interpreter's built-in defaults, used
// when no config file is supplied.
func Default() *Config {
	return &Config{
		Evaluator: EvaluatorOptions{
			MaxLoopIterations: 1_000_000,
			MaxCallDepth:      1000,
		},
	}
}

// Load reads and parses a YAML config file at path. Zero-valued fields left
// unset in the file fall back to Default's values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Evaluator.MaxLoopIterations == 0 {
		cfg.Evaluator.MaxLoopIterations = Default().Evaluator.MaxLoopIterations
	}
	if cfg.Evaluator.MaxCallDepth == 0 {
		cfg.Evaluator.MaxCallDepth = Default().Evaluator.MaxCallDepth
	}

	return cfg, nil
}
