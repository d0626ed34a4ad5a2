// Package selection provides server-held city → street → address → station
// selection sessions.
package selection

import (
	apphttp "station_lookup_backend/internal/http"
	"station_lookup_backend/internal/selection/domain"
	"station_lookup_backend/internal/selection/handler"
	"station_lookup_backend/internal/selection/repository"
	"station_lookup_backend/internal/selection/service"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/validator"
)

// Module is the selection module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the selection controller over the address and station
// lookups and the given session store.
func NewModule(addresses domain.AddressSource, stations domain.StationResolver, store repository.Store, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(domain.NewController(addresses, stations), store, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "selection"
}

func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

var _ apphttp.Module = (*Module)(nil)
