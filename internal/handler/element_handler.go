package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventario/internal/service"
)

// ElementHandler handles element endpoints, including photo management.
type ElementHandler struct {
	elementService service.ElementService
}

// NewElementHandler creates a new ElementHandler.
func NewElementHandler(elementService service.ElementService) *ElementHandler {
	return &ElementHandler{elementService: elementService}
}

// Create handles POST /api/v1/inventarios/:id/elementos.
func (h *ElementHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.ElementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	el, err := h.elementService.Create(c.Request.Context(), userID, invID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, "elemento creado", el)
}

// ListByInventory handles GET /api/v1/inventarios/:id/elementos.
func (h *ElementHandler) ListByInventory(c *gin.Context) {
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

	els, total, err := h.elementService.ListByInventory(c.Request.Context(), userID, invID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, els, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/elementos/:id.
func (h *ElementHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	el, err := h.elementService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "consulta exitosa", el)
}

// Update handles PUT /api/v1/elementos/:id.
func (h *ElementHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.ElementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	el, err := h.elementService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "elemento actualizado", el)
}

// Delete handles DELETE /api/v1/elementos/:id.
func (h *ElementHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	if err := h.elementService.Delete(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "elemento eliminado", nil)
}

// UploadImage handles POST /api/v1/elementos/:id/imagen. The photo is read
// from the multipart field "imagen" and stored in object storage.
func (h *ElementHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	file, header, err := c.Request.FormFile("imagen")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "el campo 'imagen' es obligatorio")
		return
	}
	defer func() { _ = file.Close() }()

	input := service.UploadImageInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	el, err := h.elementService.UploadImage(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "imagen cargada", el)
}

// ImageURL handles GET /api/v1/elementos/:id/imagen and returns a
// time-limited download URL.
func (h *ElementHandler) ImageURL(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	url, err := h.elementService.ImageURL(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "consulta exitosa", gin.H{"url": url})
}
