package catalog

import (
	"net/http"

	"guesthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(c Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.ListRoomTypes)
		rooms.GET("/:id", h.GetRoomType)
	}
}

// ListRoomTypes handles GET /rooms
func (h *Handler) ListRoomTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalog.All())
}

// GetRoomType handles GET /rooms/:id
func (h *Handler) GetRoomType(c *gin.Context) {
	rt, ok := h.catalog.Lookup(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room type not found")
		return
	}
	response.Success(c, http.StatusOK, rt)
}
