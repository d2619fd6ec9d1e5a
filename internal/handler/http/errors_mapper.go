package http

import (
	"errors"
	"net/http"

	"github.com/seanhoyal/go-carbon-api/internal/adapter"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/service"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/internal/utils"
	"github.com/seanhoyal/go-carbon-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAuthenticationFailed:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrPostcodeAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrRecordNotFound:        http.StatusNotFound,

	adapter.ErrPostcodeNotRecognized: http.StatusNotFound,
	adapter.ErrLookupUnavailable:     http.StatusBadGateway,
	adapter.ErrLookupTimeout:         http.StatusGatewayTimeout,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// matchError resolves err to the sentinel it wraps and that sentinel's HTTP
// status. Unmatched errors answer 500 without leaking their message.
func matchError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return errors.New(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError
}

// writeError converts err into the JSON error body every failed request
// carries. Only the matched sentinel's message reaches the client; wrapped
// causes stay in the logs.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	sentinel, status := matchError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with an unexpected error")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: sentinel.Error()}, status)
}
