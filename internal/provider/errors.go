package provider

import "errors"

// ExpectedError is an anticipated failure. Hosts report it to the user as a plain message.
type ExpectedError struct {
	Msg string
}

func (e *ExpectedError) Error() string {
	return e.Msg
}

// ErrVideoUnavailable is returned when a video page carries no stream URL.
var ErrVideoUnavailable = &ExpectedError{Msg: "video is unavailable"}

// IsExpected reports whether err wraps an ExpectedError.
func IsExpected(err error) bool {
	var e *ExpectedError
	return errors.As(err, &e)
}
