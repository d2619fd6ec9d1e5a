package service

import (
	"context"

	"github.com/seanhoyal/go-carbon-api/models"
)

// Function-field fakes for the seams under the service layer. Tests assign
// only the functions they expect to be called; an unexpected call panics on
// the nil function and fails the test loudly.

type userRepoMock struct {
	createUser         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsername func(ctx context.Context, username string) (models.User, error)
	findUserByID       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *userRepoMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUser(ctx, user)
}

func (m *userRepoMock) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsername(ctx, username)
}

func (m *userRepoMock) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByID(ctx, userID)
}

type recordRepoMock struct {
	listRecords          func(ctx context.Context) ([]models.Record, error)
	findRecordByPostcode func(ctx context.Context, postcode string) (models.Record, error)
	createRecord         func(ctx context.Context, record models.Record) error
	updateRecord         func(ctx context.Context, update models.RecordUpdate) error
	deleteRecord         func(ctx context.Context, postcode string) error
}

func (m *recordRepoMock) ListRecords(ctx context.Context) ([]models.Record, error) {
	return m.listRecords(ctx)
}

func (m *recordRepoMock) FindRecordByPostcode(ctx context.Context, postcode string) (models.Record, error) {
	return m.findRecordByPostcode(ctx, postcode)
}

func (m *recordRepoMock) CreateRecord(ctx context.Context, record models.Record) error {
	return m.createRecord(ctx, record)
}

func (m *recordRepoMock) UpdateRecord(ctx context.Context, update models.RecordUpdate) error {
	return m.updateRecord(ctx, update)
}

func (m *recordRepoMock) DeleteRecord(ctx context.Context, postcode string) error {
	return m.deleteRecord(ctx, postcode)
}

type carbonMock struct {
	lookup func(ctx context.Context, postcode string) (models.RegionalPayload, error)
}

func (m *carbonMock) Lookup(ctx context.Context, postcode string) (models.RegionalPayload, error) {
	return m.lookup(ctx, postcode)
}
