package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/models"
)

// Config holds the connection settings of the carbon-intensity API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type carbonClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewCarbonClient constructs a [CarbonLookup] backed by a resty client with
// a bounded per-call timeout. Missing settings fall back to the public API
// endpoint and a 10 second timeout.
func NewCarbonClient(cfg Config, log *logger.Logger) CarbonLookup {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.carbonintensity.org.uk"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	log.Info().Str("base_url", cfg.BaseURL).Dur("timeout", cfg.Timeout).Msg("carbon-intensity client created")

	return &carbonClient{client: cli, logger: log}
}

// Lookup fetches the regional intensity payload for postcode. Every call is
// independent: no prior validation result is cached or reused.
func (c *carbonClient) Lookup(ctx context.Context, postcode string) (models.RegionalPayload, error) {
	log := logger.FromContext(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("postcode", postcode).
		Get("/regional/postcode/{postcode}")
	if err != nil {
		if isTimeout(err) {
			log.Err(err).Str("postcode", postcode).Msg("carbon-intensity lookup timed out")
			return models.RegionalPayload{}, fmt.Errorf("%w: %w", ErrLookupTimeout, err)
		}
		log.Err(err).Str("postcode", postcode).Msg("carbon-intensity lookup request failed")
		return models.RegionalPayload{}, fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusNotFound:
		return models.RegionalPayload{}, ErrPostcodeNotRecognized
	default:
		log.Error().
			Int("status", resp.StatusCode()).
			Str("postcode", postcode).
			Msg("carbon-intensity lookup answered with an unexpected status")
		return models.RegionalPayload{}, fmt.Errorf("%w: http %d", ErrLookupUnavailable, resp.StatusCode())
	}

	var payload models.RegionalPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Str("postcode", postcode).Msg("failed to decode carbon-intensity payload")
		return models.RegionalPayload{}, fmt.Errorf("%w: decode: %w", ErrLookupUnavailable, err)
	}

	if len(payload.Data) == 0 {
		return models.RegionalPayload{}, ErrPostcodeNotRecognized
	}

	return payload, nil
}

// isTimeout reports whether err is a deadline or network timeout failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
