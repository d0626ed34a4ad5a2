package handler

import (
	"net/http"

	"station_lookup_backend/internal/stations/service"
	"station_lookup_backend/internal/stations/transport"
	"station_lookup_backend/platform/httpkit"
	"station_lookup_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles station lookups.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stations/:code", h.Lookup)
}

// Lookup resolves a station code.
// GET /api/v1/stations/:code
func (h *Handler) Lookup(c *gin.Context) {
	var path transport.CodePath
	if err := c.ShouldBindUri(&path); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := h.val.Struct(path); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid station code", err.Error())
		return
	}

	st, err := h.svc.Lookup(c.Request.Context(), path.Code)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.StationLookupResponse{
		Code:    path.Code,
		Station: transport.ToStationResponse(st),
	})
}
