package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/seanhoyal/go-carbon-api/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE user_id = $1;`
)

// recordColumns is the canonical column order for the records table;
// every scan of a record row follows it.
var recordColumns = []string{"region_id", "name", "postcode", "forecast", "indx", "date"}

// psql builds all record statements with PostgreSQL $N placeholders, so no
// user-supplied value is ever interpolated into query text.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListRecordsQuery() (string, []any, error) {
	return psql.Select(recordColumns...).
		From("records").
		ToSql()
}

func buildFindRecordQuery(postcode string) (string, []any, error) {
	return psql.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"postcode": postcode}).
		ToSql()
}

func buildInsertRecordQuery(record models.Record) (string, []any, error) {
	return psql.Insert("records").
		Columns(recordColumns...).
		Values(record.RegionID, record.Name, record.Postcode, record.Forecast, record.Index, record.Date).
		ToSql()
}

func buildUpdateRecordQuery(update models.RecordUpdate) (string, []any, error) {
	// region_id, name and postcode are immutable after creation
	return psql.Update("records").
		Set("forecast", update.Forecast).
		Set("indx", update.Index).
		Set("date", update.Date).
		Where(sq.Eq{"postcode": update.Postcode}).
		ToSql()
}

func buildDeleteRecordQuery(postcode string) (string, []any, error) {
	return psql.Delete("records").
		Where(sq.Eq{"postcode": postcode}).
		ToSql()
}
