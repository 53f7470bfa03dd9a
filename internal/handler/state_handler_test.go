package handler_test

import (
	"bytes"
	"encoding/json"
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
	"inventario/internal/service"
	"inventario/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newStateHandler() (*handler.StateHandler, *mocks.MockStateService) {
	mockSvc := new(mocks.MockStateService)
	h := handler.NewStateHandler(mockSvc)
	return h, mockSvc
}

func jsonRequest(t *testing.T, method, path string, payload any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestStateHandler_Create_Success(t *testing.T) {
	h, mockSvc := newStateHandler()

	expected := &domain.State{ID: uuid.New(), Name: "operativo"}
	mockSvc.On("Create", mock.Anything, service.StateInput{Name: "operativo"}).Return(expected, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/estados", map[string]string{"nombre": "operativo"})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "estado creado", resp.Message)
	mockSvc.AssertExpectations(t)
}

func TestStateHandler_Create_Duplicate(t *testing.T) {
	h, mockSvc := newStateHandler()

	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateState)

	w, c := jsonRequest(t, http.MethodPost, "/api/v1/estados", map[string]string{"nombre": "operativo"})

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "ya existe un estado con ese nombre", resp.Message)
}

func TestStateHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newStateHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/estados/no-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "no-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStateHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newStateHandler()

	stateID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, stateID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/estados/"+stateID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: stateID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStateHandler_List_Paginated(t *testing.T) {
	h, mockSvc := newStateHandler()

	states := []domain.State{{ID: uuid.New(), Name: "operativo"}, {ID: uuid.New(), Name: "dañado"}}
	mockSvc.On("List", mock.Anything, 0, 20).Return(states, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/estados", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestStateHandler_Delete_InUse(t *testing.T) {
	h, mockSvc := newStateHandler()

	stateID := uuid.New()
	mockSvc.On("Delete", mock.Anything, stateID).Return(domain.ErrStateInUse)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/estados/"+stateID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: stateID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
