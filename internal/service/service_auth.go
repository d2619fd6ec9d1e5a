package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/seanhoyal/go-carbon-api/internal/config"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/internal/utils"
	"github.com/seanhoyal/go-carbon-api/models"
)

const maxUsernameLength = 32

// Auth implements [AuthService]: account registration, credential checks and
// token issuance. Tokens are stateless, so the only persistent state it
// touches is the users table.
type Auth struct {
	users  store.UserRepository
	appCfg config.App
	logger *logger.Logger
}

// NewAuthService returns an [AuthService] backed by the given user repository.
func NewAuthService(users store.UserRepository, appCfg config.App, log *logger.Logger) *Auth {
	return &Auth{users: users, appCfg: appCfg, logger: log}
}

// Register validates the username and password, hashes the password and
// persists the new account.
func (a *Auth) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}
	if len(username) > maxUsernameLength {
		return models.User{}, fmt.Errorf("%w: username is longer than %d characters", ErrInvalidDataProvided, maxUsernameLength)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("error occurred during hashing password")
		return models.User{}, fmt.Errorf("error occurred during hashing password: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if !errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Err(err).Str("username", username).Msg("error occurred during creating user")
		}
		return models.User{}, err
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Authenticate resolves the given credentials to a user. Every failure mode
// collapses into ErrAuthenticationFailed so callers cannot probe which part
// of the credentials was wrong.
func (a *Auth) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	switch creds.Kind {
	case models.CredentialsToken:
		token, err := a.ParseToken(ctx, creds.Token)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}

		user, err := a.users.FindUserByID(ctx, token.UserID)
		if err != nil {
			log.Warn().Int64("user_id", token.UserID).Msg("token subject does not resolve to a user")
			// Deliberately severs the chain: a vanished subject must answer
			// as an authentication failure, not a not-found.
			return models.User{}, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
		return user, nil

	case models.CredentialsPassword:
		user, err := a.users.FindUserByUsername(ctx, creds.Username)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}

		if !utils.CheckPassword(creds.Password, user.PasswordHash) {
			return models.User{}, fmt.Errorf("%w: wrong password", ErrAuthenticationFailed)
		}
		return user, nil

	default:
		return models.User{}, fmt.Errorf("%w: no credentials provided", ErrAuthenticationFailed)
	}
}

// IssueToken signs a fresh JWT for the given user using the configured
// issuer, secret and lifetime.
func (a *Auth) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.appCfg.TokenIssuer, user.UserID, a.appCfg.TokenDuration, a.appCfg.TokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error occurred during generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Int64("user_id", user.UserID).Int64("expires_in", token.ExpiresIn).Msg("token issued")
	return token, nil
}

// ParseToken validates the signature, issuer and expiry of a signed token
// string. All parsing failures normalise to ErrTokenIsExpiredOrInvalid.
func (a *Auth) ParseToken(_ context.Context, signedToken string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(signedToken, a.appCfg.TokenSignKey, a.appCfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

// GetUser returns the user with the given id.
func (a *Auth) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return a.users.FindUserByID(ctx, userID)
}
