package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/service"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/internal/utils"
	"github.com/seanhoyal/go-carbon-api/models"
)

// root answers the unauthenticated landing request.
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Message: "Welcome to the carbon-intensity API. Register at /register, fetch a token at /token.",
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON", service.ErrInvalidDataProvided))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", registeredUser.UserID))
	_, _ = utils.WriteJSON(w, map[string]string{registeredUser.Username: "User registered"}, http.StatusCreated)
}

// token exchanges valid credentials for a fresh signed token. Both HTTP Basic
// (username/password) and an already-held bearer token are accepted.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := credentialsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("token issued for user")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.TokenResponse{
		Token:    token.SignedString,
		Duration: token.ExpiresIn,
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// a non-numeric id cannot name a user
		writeError(w, r, store.ErrNoUserWasFound)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserResponse{Username: user.Username}, http.StatusOK)
}

// credentialsFromRequest resolves the request's Authorization header into a
// tagged credentials value. A Bearer header carries a token. A Basic header
// carries username/password, except that an empty password means the
// username field holds a previously issued token.
func credentialsFromRequest(r *http.Request) (models.Credentials, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Credentials{}, ErrEmptyAuthorizationHeader
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return models.Credentials{}, ErrInvalidAuthorizationHeader
		}
		return models.TokenCredentials(token), nil
	}

	username, password, ok := r.BasicAuth()
	if !ok {
		return models.Credentials{}, ErrInvalidAuthorizationHeader
	}

	if password == "" {
		if username == "" {
			return models.Credentials{}, ErrEmptyToken
		}
		return models.TokenCredentials(username), nil
	}

	return models.PasswordCredentials(username, password), nil
}
