// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath locates the sqlite database file backing the user store.
	DBPath string `koanf:"db_path"`

	// CompletionURL is the chat-completions endpoint. Empty disables the
	// completion collaborator entirely; all callers use their local fallback.
	CompletionURL string `koanf:"completion_url"`

	// CompletionKey is the bearer token for the completion endpoint.
	CompletionKey string `koanf:"completion_key"`

	// CompletionModel names the model passed on each completion request.
	CompletionModel string `koanf:"completion_model"`

	// CompletionTimeoutMS bounds each outbound completion call.
	CompletionTimeoutMS int `koanf:"completion_timeout_ms"`

	// MaxLeaderboardLimit caps GET /api/leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// DefaultQuizQuestions and MaxQuizQuestions bound quiz generation.
	DefaultQuizQuestions int `koanf:"default_quiz_questions"`
	MaxQuizQuestions     int `koanf:"max_quiz_questions"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// New creates a Config with defaults. Loading from file/env layers on top of
// these values; see Load.
func New() *Config {
	c := &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		DBPath:               "data/grandstand.db",
		CompletionURL:        "https://openrouter.ai/api/v1/chat/completions",
		CompletionModel:      "openai/gpt-3.5-turbo",
		CompletionTimeoutMS:  30_000,
		MaxLeaderboardLimit:  100,
		DefaultQuizQuestions: 5,
		MaxQuizQuestions:     10,
		CORSAllowedOrigins:   []string{"*"},
	}
	return c
}
