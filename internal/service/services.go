package service

import (
	"github.com/seanhoyal/go-carbon-api/internal/adapter"
	"github.com/seanhoyal/go-carbon-api/internal/config"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/store"
)

// Services aggregates every business-logic service the transport layer needs.
type Services struct {
	AuthService
	RecordService
}

// NewServices wires the service layer on top of the storage layer and the
// external lookup adapter.
func NewServices(storages *store.Storages, carbon adapter.CarbonLookup, appCfg config.App, log *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, appCfg, log),
		RecordService: NewRecordService(storages.RecordRepository, carbon, log),
	}
}
