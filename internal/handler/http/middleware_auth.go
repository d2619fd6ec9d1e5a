package http

import (
	"context"
	"net/http"

	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/service"
	"github.com/seanhoyal/go-carbon-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// record mutations.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via the auth service, checks that the token's subject still
// names an existing user, and stores that user's ID in the request context
// under [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent or malformed, the token fails validation, or the subject user no
// longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// Tokens are stateless, so the subject is resolved on every request.
		user, err := h.services.AuthService.GetUser(ctx, token.UserID)
		if err != nil {
			log.Warn().Int64("user_id", token.UserID).Msg("valid token for a user that no longer exists")
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
