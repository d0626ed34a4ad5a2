// Package stations provides station contact lookup by station code.
package stations

import (
	"station_lookup_backend/internal/assets"
	apphttp "station_lookup_backend/internal/http"
	"station_lookup_backend/internal/stations/domain"
	"station_lookup_backend/internal/stations/handler"
	"station_lookup_backend/internal/stations/repository"
	"station_lookup_backend/internal/stations/service"
	"station_lookup_backend/platform/config"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/validator"
)

// Module is the stations module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule loads the fallback table and wires the station lookup.
func NewModule(store assets.Store, names assets.Names, cfg config.StationConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	entries, err := repository.LoadFallback(cfg.GetStationFallbackFile())
	if err != nil {
		return nil, err
	}

	svc := service.New(store, names, domain.NewResolver(entries), cfg.GetPhoneRegion(), log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}, nil
}

func (m *Module) Name() string {
	return "stations"
}

// Service returns the service layer for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

var _ apphttp.Module = (*Module)(nil)
