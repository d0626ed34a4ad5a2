// Package addresses provides the city/street/address lookup module over the
// per-city address files.
package addresses

import (
	"station_lookup_backend/internal/addresses/handler"
	"station_lookup_backend/internal/addresses/service"
	"station_lookup_backend/internal/assets"
	apphttp "station_lookup_backend/internal/http"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/validator"
)

// Module is the addresses module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the addresses module with all its dependencies.
func NewModule(store assets.Store, names assets.Names, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, names, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "addresses"
}

// Service returns the service layer for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the lookup routes on /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

var _ apphttp.Module = (*Module)(nil)
