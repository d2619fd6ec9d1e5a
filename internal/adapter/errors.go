package adapter

import "errors"

// Sentinel errors surfaced by the carbon-intensity lookup client.
// Callers match them with [errors.Is] to translate upstream failures into
// the proper HTTP status at the request boundary.
var (
	// ErrPostcodeNotRecognized is returned when the upstream API does not
	// know the requested postcode (it answers 400 or 404 for those).
	ErrPostcodeNotRecognized = errors.New("postcode is not recognized by the carbon-intensity API")

	// ErrLookupUnavailable is returned when the upstream API is unreachable
	// or answers with a server-side error.
	ErrLookupUnavailable = errors.New("carbon-intensity API is unavailable")

	// ErrLookupTimeout is returned when the bounded lookup call exceeded
	// its configured timeout.
	ErrLookupTimeout = errors.New("carbon-intensity API call timed out")
)
