package api

import "errors"

var (
	// ErrBadRequest signals a malformed or unparsable request body.
	ErrBadRequest = errors.New("invalid request body")
	// ErrNoActiveQuiz signals a quiz submission without quiz data.
	ErrNoActiveQuiz = errors.New("no active quiz")
)
