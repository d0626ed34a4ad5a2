package handler

import (
	"net/http"

	"station_lookup_backend/internal/addresses/domain"
	"station_lookup_backend/internal/addresses/service"
	"station_lookup_backend/internal/addresses/transport"
	"station_lookup_backend/platform/httpkit"
	"station_lookup_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for cities, streets and addresses.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new address handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the lookup routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cities", h.ListCities)
	rg.GET("/cities/:city/streets", h.ListStreets)
	rg.GET("/cities/:city/addresses", h.ListAddresses)
}

// ListCities returns all cities.
// GET /api/v1/cities
func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.svc.ListCities(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	if cities == nil {
		cities = []string{}
	}
	httpkit.OK(c, transport.CityListResponse{Items: cities})
}

// ListStreets returns the sorted street keys of a city.
// GET /api/v1/cities/:city/streets
func (h *Handler) ListStreets(c *gin.Context) {
	path, ok := h.bindCity(c)
	if !ok {
		return
	}

	streets, err := h.svc.ListStreets(c.Request.Context(), path.City)
	if httpkit.HandleError(c, err) {
		return
	}
	if streets == nil {
		streets = []string{}
	}
	httpkit.OK(c, transport.StreetListResponse{City: path.City, Items: streets})
}

// ListAddresses returns the addresses of a city, optionally filtered by street.
// GET /api/v1/cities/:city/addresses?street=
func (h *Handler) ListAddresses(c *gin.Context) {
	path, ok := h.bindCity(c)
	if !ok {
		return
	}

	var query transport.StreetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	var (
		items []domain.Address
		err   error
	)
	street := domain.NormalizeStreetKey(query.Street)
	if street == "" {
		items, err = h.svc.ListAddresses(c.Request.Context(), path.City)
	} else {
		items, err = h.svc.ListStreetAddresses(c.Request.Context(), path.City, street)
	}
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.AddressListResponse{
		City:   path.City,
		Street: street,
		Items:  transport.ToAddressResponses(items),
	})
}

func (h *Handler) bindCity(c *gin.Context) (transport.CityPath, bool) {
	var path transport.CityPath
	if err := c.ShouldBindUri(&path); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return path, false
	}
	if err := h.val.Struct(path); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return path, false
	}
	return path, true
}
