package assets

import (
	"net/http"

	"station_lookup_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler serves raw text assets.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Get handles GET /api/v1/assets/:name and returns the asset verbatim.
func (h *Handler) Get(c *gin.Context) {
	text, err := h.store.Read(c.Request.Context(), c.Param("name"))
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
