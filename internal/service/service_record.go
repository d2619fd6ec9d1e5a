package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/seanhoyal/go-carbon-api/internal/adapter"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/models"
)

// Records implements [RecordService]. Writes and reads by postcode go
// through an upstream validity check first, so the records table only ever
// holds postcodes the regional API recognises.
type Records struct {
	records store.RecordRepository
	carbon  adapter.CarbonLookup
	logger  *logger.Logger
}

// NewRecordService returns a [RecordService] backed by the given record
// repository and upstream lookup client.
func NewRecordService(records store.RecordRepository, carbon adapter.CarbonLookup, log *logger.Logger) *Records {
	return &Records{records: records, carbon: carbon, logger: log}
}

// ListAll returns every stored record.
func (r *Records) ListAll(ctx context.Context) ([]models.Record, error) {
	return r.records.ListRecords(ctx)
}

// GetByPostcode validates the postcode against the regional API, then
// answers with the stored record when one exists or the live regional
// payload when it does not. The upstream check runs on every call.
func (r *Records) GetByPostcode(ctx context.Context, postcode string) (models.RecordLookup, error) {
	postcode = NormalizePostcode(postcode)
	if postcode == "" {
		return models.RecordLookup{}, fmt.Errorf("%w: postcode is required", ErrInvalidDataProvided)
	}

	payload, err := r.carbon.Lookup(ctx, postcode)
	if err != nil {
		return models.RecordLookup{}, err
	}

	record, err := r.records.FindRecordByPostcode(ctx, postcode)
	if err == nil {
		return models.RecordLookup{Record: &record}, nil
	}
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.RecordLookup{Regional: &payload}, nil
	}
	return models.RecordLookup{}, err
}

// Create validates the record fields and the postcode upstream, then stores
// the record. A postcode already on file is reported as a conflict by the
// storage layer.
func (r *Records) Create(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	record.Postcode = NormalizePostcode(record.Postcode)
	if record.Postcode == "" || record.Name == "" || record.Forecast == "" || record.Index == "" || record.Date == "" {
		return fmt.Errorf("%w: all record fields are required", ErrInvalidDataProvided)
	}
	// region ids are positive; an absent region_id decodes to zero
	if record.RegionID <= 0 {
		return fmt.Errorf("%w: a positive region_id is required", ErrInvalidDataProvided)
	}

	if _, err := r.carbon.Lookup(ctx, record.Postcode); err != nil {
		return err
	}

	if err := r.records.CreateRecord(ctx, record); err != nil {
		if !errors.Is(err, store.ErrPostcodeAlreadyExists) {
			log.Err(err).Str("postcode", record.Postcode).Msg("error occurred during creating record")
		}
		return err
	}

	log.Info().Str("postcode", record.Postcode).Msg("record created")
	return nil
}

// Update re-validates the postcode upstream and replaces the forecast, index
// and date of the stored record. Region id, name and postcode stay as they
// were at creation.
func (r *Records) Update(ctx context.Context, update models.RecordUpdate) error {
	log := logger.FromContext(ctx)

	update.Postcode = NormalizePostcode(update.Postcode)
	if update.Postcode == "" || update.Forecast == "" || update.Index == "" || update.Date == "" {
		return fmt.Errorf("%w: all record fields are required", ErrInvalidDataProvided)
	}

	if _, err := r.carbon.Lookup(ctx, update.Postcode); err != nil {
		return err
	}

	if err := r.records.UpdateRecord(ctx, update); err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			log.Err(err).Str("postcode", update.Postcode).Msg("error occurred during updating record")
		}
		return err
	}

	log.Info().Str("postcode", update.Postcode).Msg("record updated")
	return nil
}

// Delete removes the stored record for the postcode. An absent record is a
// not-found failure, not a crash, and no upstream call is made: whether the
// regional API still knows the postcode has no bearing on removal.
func (r *Records) Delete(ctx context.Context, postcode string) error {
	log := logger.FromContext(ctx)

	postcode = NormalizePostcode(postcode)
	if postcode == "" {
		return fmt.Errorf("%w: postcode is required", ErrInvalidDataProvided)
	}

	if err := r.records.DeleteRecord(ctx, postcode); err != nil {
		return err
	}

	log.Info().Str("postcode", postcode).Msg("record deleted")
	return nil
}

// NormalizePostcode strips all whitespace and upper-cases the postcode so
// "sw1a 1aa" and "SW1A1AA" address the same row.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
}
