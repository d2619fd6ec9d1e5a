package store

import "github.com/seanhoyal/go-carbon-api/internal/logger"

// Storages bundles all repositories behind their interfaces so the service
// layer receives one dependency instead of many.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		RecordRepository: NewRecordRepository(db, logger),
	}
}
