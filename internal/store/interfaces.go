package store

import (
	"context"

	"github.com/seanhoyal/go-carbon-api/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RecordRepository is the persistence contract for carbon-intensity records,
// keyed by postcode.
type RecordRepository interface {
	ListRecords(ctx context.Context) ([]models.Record, error)
	FindRecordByPostcode(ctx context.Context, postcode string) (models.Record, error)
	CreateRecord(ctx context.Context, record models.Record) error
	UpdateRecord(ctx context.Context, update models.RecordUpdate) error
	DeleteRecord(ctx context.Context, postcode string) error
}
