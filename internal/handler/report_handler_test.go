package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inventario/internal/domain"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/mocks"
)

func newReportHandler() (*handler.ReportHandler, *mocks.MockReportService) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc)
	return h, mockSvc
}

func authedGet(userID uuid.UUID, path, id string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, path, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Set(middleware.ContextKeyUserID, userID)
	return w, c
}

func TestReportHandler_ExportCSV_Success(t *testing.T) {
	h, mockSvc := newReportHandler()

	userID := uuid.New()
	repID := uuid.New()
	rep := &domain.Report{ID: repID, Title: "Inventario Trimestral Q1"}
	csv := []byte("\xef\xbb\xbfElemento,Serial\n")

	mockSvc.On("GetByID", mock.Anything, userID, repID).Return(rep, nil)
	mockSvc.On("ExportCSV", mock.Anything, userID, repID).Return(csv, nil)

	w, c := authedGet(userID, "/api/v1/reportes/"+repID.String()+"/csv", repID.String())

	h.ExportCSV(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Inventario_Trimestral_Q1_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Equal(t, csv, w.Body.Bytes())
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_ExportCSV_Forbidden(t *testing.T) {
	h, mockSvc := newReportHandler()

	userID := uuid.New()
	repID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, userID, repID).Return(nil, domain.ErrForbidden)

	w, c := authedGet(userID, "/api/v1/reportes/"+repID.String()+"/csv", repID.String())

	h.ExportCSV(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportHandler_ExportXLSX_Success(t *testing.T) {
	h, mockSvc := newReportHandler()

	userID := uuid.New()
	repID := uuid.New()
	rep := &domain.Report{ID: repID, Title: "Reporte Anual"}
	xlsx := []byte{0x50, 0x4b, 0x03, 0x04}

	mockSvc.On("GetByID", mock.Anything, userID, repID).Return(rep, nil)
	mockSvc.On("ExportXLSX", mock.Anything, userID, repID).Return(xlsx, nil)

	w, c := authedGet(userID, "/api/v1/reportes/"+repID.String()+"/xlsx", repID.String())

	h.ExportXLSX(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, xlsx, w.Body.Bytes())
}

func TestReportHandler_ExportCSV_MissingUserContext(t *testing.T) {
	h, _ := newReportHandler()

	repID := uuid.New()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reportes/"+repID.String()+"/csv", nil)
	c.Params = gin.Params{{Key: "id", Value: repID.String()}}

	h.ExportCSV(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
