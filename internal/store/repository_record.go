package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. It executes all record CRUD operations against the
// "records" table using parameterised statements built in sql_queries.go.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (postcode, row counts, etc.).
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// ListRecords returns every stored record in storage order.
// An empty table yields an empty slice, not nil.
func (r *recordRepository) ListRecords(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery()
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ListRecords").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ListRecords").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Record, 0, 50)

	for rows.Next() {
		var record models.Record

		scanErr := rows.Scan(
			&record.RegionID,
			&record.Name,
			&record.Postcode,
			&record.Forecast,
			&record.Index,
			&record.Date,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "recordRepository.ListRecords").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "recordRepository.ListRecords").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindRecordByPostcode retrieves the single record stored for the given
// postcode, or [ErrRecordNotFound] when none exists.
func (r *recordRepository) FindRecordByPostcode(ctx context.Context, postcode string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRecordQuery(postcode)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.FindRecordByPostcode").Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.Record
	row := r.DB.QueryRowContext(ctx, query, args...)

	if err := row.Scan(
		&record.RegionID,
		&record.Name,
		&record.Postcode,
		&record.Forecast,
		&record.Index,
		&record.Date,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "recordRepository.FindRecordByPostcode").
			Str("postcode", postcode).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// CreateRecord inserts a new record.
//
// The records table carries a UNIQUE constraint on postcode; a violation is
// reported as [ErrPostcodeAlreadyExists] so duplicates can never accumulate.
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.CreateRecord").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrPostcodeAlreadyExists
		}
		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Str("postcode", record.Postcode).
			Msg("failed to insert record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateRecord replaces the forecast, index and date of the record stored
// for update.Postcode. Returns [ErrRecordNotFound] when no row matched.
func (r *recordRepository) UpdateRecord(ctx context.Context, update models.RecordUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecordQuery(update)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.UpdateRecord").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.UpdateRecord").
			Str("postcode", update.Postcode).
			Msg("failed to update record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// DeleteRecord removes the record stored for the given postcode.
// Returns [ErrRecordNotFound] when no row matched, so deleting an absent
// postcode fails cleanly instead of silently succeeding.
func (r *recordRepository) DeleteRecord(ctx context.Context, postcode string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(postcode)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.DeleteRecord").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("postcode", postcode).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
