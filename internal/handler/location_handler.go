package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventario/internal/service"
)

// LocationHandler handles location endpoints nested under inventories.
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// Create handles POST /api/v1/inventarios/:id/ubicaciones.
func (h *LocationHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	loc, err := h.locationService.Create(c.Request.Context(), userID, invID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, "ubicación creada", loc)
}

// ListByInventory handles GET /api/v1/inventarios/:id/ubicaciones.
func (h *LocationHandler) ListByInventory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}
	offset, limit := pagination(c)

	locs, total, err := h.locationService.ListByInventory(c.Request.Context(), userID, invID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, locs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/ubicaciones/:id.
func (h *LocationHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	loc, err := h.locationService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "consulta exitosa", loc)
}

// Update handles PUT /api/v1/ubicaciones/:id.
func (h *LocationHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	loc, err := h.locationService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "ubicación actualizada", loc)
}

// Delete handles DELETE /api/v1/ubicaciones/:id.
// Deletion is rejected while the location still holds elements.
func (h *LocationHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "ubicación eliminada", nil)
}
