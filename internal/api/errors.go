package api

import "errors"

var (
	// ErrUnavailable indicates the presence API could not be reached.
	ErrUnavailable = errors.New("presence api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("presence api request timed out")

	// ErrNotFound indicates the API has no data for the requested entity.
	ErrNotFound = errors.New("presence api: not found")

	// ErrUnexpectedStatus indicates a non-200 response other than 404.
	ErrUnexpectedStatus = errors.New("presence api: unexpected status")

	// ErrInvalidPayload indicates the response body was not the expected JSON shape.
	ErrInvalidPayload = errors.New("presence api: invalid payload")
)
