package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventario/internal/domain"
	"inventario/internal/middleware"
)

// APIResponse is the standard envelope for all API responses: a success flag,
// a human-readable message, and an optional payload.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Message: message, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: "consulta exitosa", Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Message: message})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "recurso no encontrado"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "no autorizado"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "acceso denegado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "credenciales inválidas"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "el usuario está inactivo"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "el correo ya está registrado"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "el nombre de usuario ya está en uso"
	case errors.Is(err, domain.ErrDuplicateState):
		return http.StatusConflict, "ya existe un estado con ese nombre"
	case errors.Is(err, domain.ErrStateInUse):
		return http.StatusConflict, "el estado está asignado a elementos y no puede eliminarse"
	case errors.Is(err, domain.ErrInventoryNotEmpty):
		return http.StatusConflict, "el inventario contiene elementos y no puede eliminarse"
	case errors.Is(err, domain.ErrLocationNotEmpty):
		return http.StatusConflict, "la ubicación contiene elementos y no puede eliminarse"
	case errors.Is(err, domain.ErrAccessCodeInvalid):
		return http.StatusBadRequest, "el código de acceso no es válido"
	case errors.Is(err, domain.ErrAccessCodeExpired):
		return http.StatusBadRequest, "el código de acceso ha expirado"
	case errors.Is(err, domain.ErrAlreadyMember):
		return http.StatusConflict, "el usuario ya es miembro de este inventario"
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden, "rol insuficiente para esta acción"
	case errors.Is(err, domain.ErrUnsupportedImage):
		return http.StatusBadRequest, "tipo de imagen no soportado; se permiten jpeg, png y webp"
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "la imagen excede el tamaño máximo permitido"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "falló la carga del archivo"
	default:
		return http.StatusInternalServerError, "ocurrió un error interno"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}

// currentUser extracts the authenticated user ID, writing a 401 if absent.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "falta el contexto de usuario")
		return uuid.Nil, false
	}
	return userID, true
}

// pagination reads offset/limit query parameters with sane bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset = queryInt(c, "offset", 0)
	limit = queryInt(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}
