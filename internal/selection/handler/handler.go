package handler

import (
	"net/http"

	"station_lookup_backend/internal/selection/service"
	"station_lookup_backend/internal/selection/transport"
	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/httpkit"
	"station_lookup_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles selection session HTTP requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	selections := rg.Group("/selections")
	selections.POST("", h.Create)
	selections.GET("/:id", h.Get)
	selections.DELETE("/:id", h.Delete)
	selections.PUT("/:id/city", h.SelectCity)
	selections.PUT("/:id/street", h.SelectStreet)
	selections.PUT("/:id/address", h.SelectAddress)
}

// Create starts a new selection session.
// POST /api/v1/selections
func (h *Handler) Create(c *gin.Context) {
	id, st, err := h.svc.Create(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.ToSelectionResponse(id, st))
}

// GET /api/v1/selections/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	st, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToSelectionResponse(id, st))
}

// DELETE /api/v1/selections/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), id)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/v1/selections/:id/city
func (h *Handler) SelectCity(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req transport.SelectCityRequest
	if !h.bindBody(c, &req) {
		return
	}
	st, err := h.svc.SelectCity(c.Request.Context(), id, req.City)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToSelectionResponse(id, st))
}

// PUT /api/v1/selections/:id/street
func (h *Handler) SelectStreet(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req transport.SelectStreetRequest
	if !h.bindBody(c, &req) {
		return
	}
	st, err := h.svc.SelectStreet(c.Request.Context(), id, req.Street)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToSelectionResponse(id, st))
}

// PUT /api/v1/selections/:id/address
func (h *Handler) SelectAddress(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req transport.SelectAddressRequest
	if !h.bindBody(c, &req) {
		return
	}
	st, err := h.svc.SelectAddress(c.Request.Context(), id, req.FullAddress)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToSelectionResponse(id, st))
}

func (h *Handler) bindID(c *gin.Context) (string, bool) {
	var path transport.IDPath
	if err := c.ShouldBindUri(&path); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return "", false
	}
	if err := h.val.Struct(path); err != nil {
		httpkit.Error(c, http.StatusNotFound, "selection session not found", nil)
		return "", false
	}
	return path.ID, true
}

func (h *Handler) bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request").WithDetails(err.Error()))
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("validation failed").WithDetails(err.Error()))
		return false
	}
	return true
}
