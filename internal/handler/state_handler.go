package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventario/internal/service"
)

// StateHandler handles element state catalog endpoints.
type StateHandler struct {
	stateService service.StateService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(stateService service.StateService) *StateHandler {
	return &StateHandler{stateService: stateService}
}

// Create handles POST /api/v1/estados.
func (h *StateHandler) Create(c *gin.Context) {
	var input service.StateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	state, err := h.stateService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, "estado creado", state)
}

// List handles GET /api/v1/estados.
func (h *StateHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	states, total, err := h.stateService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, states, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/estados/:id.
func (h *StateHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	state, err := h.stateService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "consulta exitosa", state)
}

// Update handles PUT /api/v1/estados/:id.
func (h *StateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.StateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	state, err := h.stateService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "estado actualizado", state)
}

// Delete handles DELETE /api/v1/estados/:id.
// Deletion is rejected while any element still references the state.
func (h *StateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	if err := h.stateService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "estado eliminado", nil)
}
