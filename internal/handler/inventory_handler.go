package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventario/internal/service"
)

// InventoryHandler handles inventory endpoints, including sharing by
// access code.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles POST /api/v1/inventarios.
func (h *InventoryHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input service.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	inv, err := h.inventoryService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, "inventario creado", inv)
}

// List handles GET /api/v1/inventarios. Only inventories the caller owns
// or has joined are returned.
func (h *InventoryHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	invs, total, err := h.inventoryService.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/inventarios/:id.
func (h *InventoryHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	inv, err := h.inventoryService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "consulta exitosa", inv)
}

// Update handles PUT /api/v1/inventarios/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	inv, err := h.inventoryService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "inventario actualizado", inv)
}

// Delete handles DELETE /api/v1/inventarios/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "inventario eliminado", nil)
}

// Share handles POST /api/v1/inventarios/:id/compartir. It generates an
// access code and emails it to the invitee.
func (h *InventoryHandler) Share(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.ShareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	code, err := h.inventoryService.Share(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, "código de acceso generado", code)
}

// Join handles POST /api/v1/inventarios/unirse. The caller redeems an
// access code and becomes a member of the inventory it points to.
func (h *InventoryHandler) Join(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input service.JoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	inv, err := h.inventoryService.Join(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "te has unido al inventario", inv)
}
