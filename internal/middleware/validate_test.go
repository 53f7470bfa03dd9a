package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario/internal/middleware"
	"inventario/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// echoEngine mounts the validation filter in front of a handler that echoes
// the body bytes it managed to read.
func echoEngine(bindings validation.Bindings, operation string) *gin.Engine {
	r := gin.New()
	r.POST("/t", middleware.ValidateBody(validation.NewRegistry(), bindings, operation), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusInternalServerError, "read failed")
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	})
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/t", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type abortBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    []string `json:"data"`
}

func decodeAbort(t *testing.T, w *httptest.ResponseRecorder) abortBody {
	t.Helper()
	var b abortBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func TestValidateBody_UnboundOperationPassesThrough(t *testing.T) {
	r := echoEngine(validation.DefaultBindings, "estados.list")

	w := post(r, `esto ni siquiera es JSON`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "esto ni siquiera es JSON", w.Body.String())
}

func TestValidateBody_UnknownEntityAborts(t *testing.T) {
	bindings := validation.Bindings{"productos.create": "producto"}
	r := echoEngine(bindings, "productos.create")

	w := post(r, `{"nombre": "valido"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	b := decodeAbort(t, w)
	assert.False(t, b.Success)
	assert.Equal(t, "entidad no reconocida", b.Message)
	assert.Empty(t, b.Data)
}

func TestValidateBody_MalformedJSONAborts(t *testing.T) {
	r := echoEngine(validation.DefaultBindings, "estados.create")

	w := post(r, `{"nombre": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	b := decodeAbort(t, w)
	assert.False(t, b.Success)
	assert.Equal(t, "JSON mal formado", b.Message)
	assert.Empty(t, b.Data)
}

func TestValidateBody_ViolationsAbortWithDetails(t *testing.T) {
	r := echoEngine(validation.DefaultBindings, "estados.create")

	w := post(r, `{"nombre": "ab"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	b := decodeAbort(t, w)
	assert.False(t, b.Success)
	assert.Equal(t, "la solicitud contiene campos inválidos", b.Message)
	require.Len(t, b.Data, 1)
	assert.Equal(t, "El campo 'nombre' debe tener al menos 3 caracteres.", b.Data[0])
}

func TestValidateBody_AggregatesAllViolations(t *testing.T) {
	r := echoEngine(validation.DefaultBindings, "elementos.create")

	w := post(r, `{"descripcion": 1, "cantidad": "dos", "fechaAdquisicion": "2024-02-30"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	b := decodeAbort(t, w)
	require.Len(t, b.Data, 4)
	assert.Equal(t, "El campo 'nombre' es obligatorio.", b.Data[0])
	assert.Equal(t, "El campo 'descripcion' debe ser una cadena de texto.", b.Data[1])
	assert.Equal(t, "El campo 'cantidad' debe ser numérico.", b.Data[2])
	assert.Equal(t, "El campo 'fechaAdquisicion' debe ser una fecha válida con formato yyyy-MM-dd.", b.Data[3])
}

func TestValidateBody_ValidBodyReachesHandlerIntact(t *testing.T) {
	r := echoEngine(validation.DefaultBindings, "estados.create")

	// Extra whitespace and field order must survive byte for byte.
	body := `{ "nombre":  "operativo" }`
	w := post(r, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.String())
}

func TestValidateBody_ExtraFieldsPass(t *testing.T) {
	r := echoEngine(validation.DefaultBindings, "estados.create")

	w := post(r, `{"nombre": "operativo", "otro": {"x": 1}}`)

	assert.Equal(t, http.StatusOK, w.Code)
}
