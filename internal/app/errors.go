package service

import "errors"

var (
	// ErrNoStore means Start was called without a store.
	ErrNoStore = errors.New("service: no store configured")

	// ErrNoCompleter means Start was called without a completion backend.
	ErrNoCompleter = errors.New("service: no completer configured")

	// ErrEmptyMessage rejects blank chat messages.
	ErrEmptyMessage = errors.New("message required")

	// ErrEmptyUsername rejects blank logins.
	ErrEmptyUsername = errors.New("username required")

	// ErrEmptyTeam rejects blank team names.
	ErrEmptyTeam = errors.New("team name required")

	// ErrNoQuiz rejects submissions without quiz questions.
	ErrNoQuiz = errors.New("no active quiz")
)
