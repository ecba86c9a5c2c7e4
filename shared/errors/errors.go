package errors

import (
	"errors"
	"net/http"
)

// ErrorWithStatusCode carries the HTTP status the API answered with.
// Message is what the user gets to see.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// StatusCode extracts the status of an ErrorWithStatusCode anywhere in the
// chain. Anything else is reported as 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
