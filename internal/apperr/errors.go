package apperr

import "errors"

// Sentinel errors for the request pipeline. Controllers translate these into
// HTTP statuses; everything upstream-shaped is absorbed into a 200 payload and
// never reaches the client as an HTTP error.
var (
	// ErrUnauthenticated covers missing, malformed, and unverifiable bearer tokens.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConfiguration means a required secret or key was absent at request time.
	ErrConfiguration = errors.New("configuration error")

	// ErrGenerationFailure means the chat model call failed or returned no content.
	ErrGenerationFailure = errors.New("chat model returned no usable content")

	// ErrUpstreamDegraded marks a failed collaborator call (search, classification).
	ErrUpstreamDegraded = errors.New("upstream collaborator unavailable")
)
