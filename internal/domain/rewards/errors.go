package rewards

import "errors"

var (
	// ErrUnknownAction is wrapped into failure outcomes for actions outside
	// the closed set.
	ErrUnknownAction = errors.New("unknown reward action")
)
