package completion

import "errors"

var (
	// ErrDisabled means no API key is configured; callers should use their
	// built-in fallback.
	ErrDisabled = errors.New("completion client disabled")

	// ErrBadStatus wraps non-200 responses.
	ErrBadStatus = errors.New("completion API error")

	// ErrEmptyResponse means the API answered with no usable content.
	ErrEmptyResponse = errors.New("completion API returned no content")

	// ErrNoJSON means no JSON object could be extracted from a response.
	ErrNoJSON = errors.New("no JSON object in completion response")
)
