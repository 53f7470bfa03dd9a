package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventario/internal/export"
	"inventario/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report endpoints and file exports.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Create handles POST /api/v1/inventarios/:id/reportes.
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	rep, err := h.reportService.Create(c.Request.Context(), userID, invID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, "reporte creado", rep)
}

// ListByInventory handles GET /api/v1/inventarios/:id/reportes.
func (h *ReportHandler) ListByInventory(c *gin.Context) {
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

	reps, total, err := h.reportService.ListByInventory(c.Request.Context(), userID, invID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, reps, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/reportes/:id.
func (h *ReportHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	rep, err := h.reportService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "consulta exitosa", rep)
}

// Update handles PUT /api/v1/reportes/:id.
func (h *ReportHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	var input service.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "solicitud inválida")
		return
	}

	rep, err := h.reportService.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "reporte actualizado", rep)
}

// Delete handles DELETE /api/v1/reportes/:id.
func (h *ReportHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, "reporte eliminado", nil)
}

// ExportCSV handles GET /api/v1/reportes/:id/csv and streams the report's
// element snapshot as a CSV attachment.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	rep, err := h.reportService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := h.reportService.ExportCSV(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(rep.Title, "csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportXLSX handles GET /api/v1/reportes/:id/xlsx.
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "identificador inválido")
		return
	}

	rep, err := h.reportService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := h.reportService.ExportXLSX(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(rep.Title, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
