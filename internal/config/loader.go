package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if GRANDSTAND_CONFIG is set
//  3. env (prefix GRANDSTAND_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GRANDSTAND_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GRANDSTAND_ADDR, GRANDSTAND_DB_PATH, ...
	// Map env keys like GRANDSTAND_DB_PATH -> db_path (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("GRANDSTAND_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "grandstand_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.DBPath == "":
		return nil, fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	case cfg.MaxLeaderboardLimit < 1:
		return nil, fmt.Errorf("%w: max_leaderboard_limit must be positive", ErrInvalidConfig)
	case cfg.MaxQuizQuestions < 1 || cfg.DefaultQuizQuestions < 1:
		return nil, fmt.Errorf("%w: quiz question bounds must be positive", ErrInvalidConfig)
	case cfg.DefaultQuizQuestions > cfg.MaxQuizQuestions:
		return nil, fmt.Errorf("%w: default_quiz_questions exceeds max_quiz_questions", ErrInvalidConfig)
	case cfg.CompletionTimeoutMS < 0:
		return nil, fmt.Errorf("%w: completion_timeout_ms must not be negative", ErrInvalidConfig)
	}

	return &cfg, nil
}
