// Package adapter contains clients for external services. Its only member
// today is the carbonintensity.org.uk regional API client used to validate
// postcodes and fetch regional intensity payloads.
package adapter

import (
	"context"

	"github.com/seanhoyal/go-carbon-api/models"
)

// CarbonLookup is the contract the service layer consumes for upstream
// postcode validation and regional intensity reads.
//
// Implementations must bound every call with a timeout and report failures
// through the package sentinel errors, never by returning a zero payload.
type CarbonLookup interface {
	// Lookup fetches the regional intensity payload for the given postcode.
	// Returns ErrPostcodeNotRecognized when the upstream service does not
	// know the postcode, ErrLookupTimeout when the bounded call ran out of
	// time, and ErrLookupUnavailable for any other upstream failure.
	Lookup(ctx context.Context, postcode string) (models.RegionalPayload, error)
}
