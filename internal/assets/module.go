package assets

import (
	"context"

	apphttp "station_lookup_backend/internal/http"
)

// Module wires the raw asset routes.
type Module struct {
	handler *Handler
}

func NewModule(store Store) *Module {
	return &Module{handler: NewHandler(store)}
}

func (m *Module) Name() string {
	return "assets"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/assets/:name", m.handler.Get)
}

// HealthCheck reports the store as ready when the city list can be read.
type HealthCheck struct {
	store Store
	names Names
}

func NewHealthCheck(store Store, names Names) *HealthCheck {
	return &HealthCheck{store: store, names: names}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.store.Read(ctx, h.names.CityList)
	return err
}

var _ apphttp.Module = (*Module)(nil)
var _ apphttp.HealthChecker = (*HealthCheck)(nil)
