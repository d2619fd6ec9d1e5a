package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanhoyal/go-carbon-api/internal/config"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/internal/utils"
	"github.com/seanhoyal/go-carbon-api/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-carbon-api",
	TokenDuration: 30 * time.Minute,
}

func newTestAuth(users store.UserRepository) *Auth {
	return NewAuthService(users, testAppConfig, logger.Nop())
}

func TestAuth_Register(t *testing.T) {
	users := &userRepoMock{
		createUser: func(_ context.Context, user models.User) (models.User, error) {
			require.Equal(t, "frodo", user.Username)
			require.NotEmpty(t, user.PasswordHash)
			require.NotEqual(t, "precious", user.PasswordHash)

			user.UserID = 7
			return user, nil
		},
	}

	created, err := newTestAuth(users).Register(context.Background(), "frodo", "precious")

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.True(t, utils.CheckPassword("precious", created.PasswordHash))
}

func TestAuth_Register_InvalidData(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "precious"},
		{"empty password", "frodo", ""},
		{"username too long", strings.Repeat("a", maxUsernameLength+1), "precious"},
	}

	auth := newTestAuth(&userRepoMock{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(context.Background(), tt.username, tt.password)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuth_Register_DuplicateUsername(t *testing.T) {
	users := &userRepoMock{
		createUser: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	_, err := newTestAuth(users).Register(context.Background(), "frodo", "precious")
	require.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuth_Authenticate_Password(t *testing.T) {
	hash, err := utils.HashPassword("precious")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Username: "frodo", PasswordHash: hash}
	users := &userRepoMock{
		findUserByUsername: func(_ context.Context, username string) (models.User, error) {
			if username != "frodo" {
				return models.User{}, store.ErrNoUserWasFound
			}
			return stored, nil
		},
	}
	auth := newTestAuth(users)

	t.Run("correct password", func(t *testing.T) {
		user, err := auth.Authenticate(context.Background(), models.PasswordCredentials("frodo", "precious"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Authenticate(context.Background(), models.PasswordCredentials("frodo", "treacherous"))
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := auth.Authenticate(context.Background(), models.PasswordCredentials("sauron", "precious"))
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestAuth_Authenticate_Token(t *testing.T) {
	stored := models.User{UserID: 7, Username: "frodo"}
	users := &userRepoMock{
		findUserByID: func(_ context.Context, userID int64) (models.User, error) {
			if userID != stored.UserID {
				return models.User{}, store.ErrNoUserWasFound
			}
			return stored, nil
		},
	}
	auth := newTestAuth(users)

	token, err := auth.IssueToken(context.Background(), stored)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		user, err := auth.Authenticate(context.Background(), models.TokenCredentials(token.SignedString))
		require.NoError(t, err)
		assert.Equal(t, "frodo", user.Username)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.Authenticate(context.Background(), models.TokenCredentials("not.a.token"))
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		ghost, err := auth.IssueToken(context.Background(), models.User{UserID: 404})
		require.NoError(t, err)

		_, err = auth.Authenticate(context.Background(), models.TokenCredentials(ghost.SignedString))
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestAuth_Authenticate_NoCredentials(t *testing.T) {
	_, err := newTestAuth(&userRepoMock{}).Authenticate(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuth_IssueAndParseToken(t *testing.T) {
	auth := newTestAuth(&userRepoMock{})

	token, err := auth.IssueToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(1800), token.ExpiresIn)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuth_ParseToken_WrongKey(t *testing.T) {
	otherCfg := testAppConfig
	otherCfg.TokenSignKey = "different-sign-key"
	other := NewAuthService(&userRepoMock{}, otherCfg, logger.Nop())

	token, err := other.IssueToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = newTestAuth(&userRepoMock{}).ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuth_GetUser(t *testing.T) {
	users := &userRepoMock{
		findUserByID: func(_ context.Context, userID int64) (models.User, error) {
			if userID != 7 {
				return models.User{}, store.ErrNoUserWasFound
			}
			return models.User{UserID: 7, Username: "frodo"}, nil
		},
	}
	auth := newTestAuth(users)

	user, err := auth.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "frodo", user.Username)

	_, err = auth.GetUser(context.Background(), 8)
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}
