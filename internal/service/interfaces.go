// Package service contains the business rules of the application: account
// registration, dual-mode authentication, token issuance and the postcode
// record lifecycle with upstream validation.
package service

import (
	"context"

	"github.com/seanhoyal/go-carbon-api/models"
)

// AuthService manages accounts and access tokens.
type AuthService interface {
	// Register creates a new account from a username and a plain-text
	// password. The password is stored only as a salted hash.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Authenticate verifies the given credentials and returns the matching
	// user. Password credentials are checked against the stored hash, token
	// credentials are parsed and resolved to their subject.
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)

	// IssueToken signs a fresh token for the given user.
	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a signed token string and returns the parsed
	// token with its subject claims.
	ParseToken(ctx context.Context, signedToken string) (models.Token, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// RecordService manages stored carbon-intensity records keyed by postcode.
type RecordService interface {
	// ListAll returns every stored record.
	ListAll(ctx context.Context) ([]models.Record, error)

	// GetByPostcode validates the postcode upstream and returns the stored
	// record when one exists, or the live regional payload otherwise.
	GetByPostcode(ctx context.Context, postcode string) (models.RecordLookup, error)

	// Create validates the record's postcode upstream and stores it.
	Create(ctx context.Context, record models.Record) error

	// Update re-validates the postcode upstream and replaces the mutable
	// fields of the stored record.
	Update(ctx context.Context, update models.RecordUpdate) error

	// Delete removes the stored record for the postcode.
	Delete(ctx context.Context, postcode string) error
}
