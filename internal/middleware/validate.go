package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventario/internal/validation"
)

// ValidateBody returns middleware that enforces the field rules bound to the
// given operation before the handler runs.
//
// The body is read to completion exactly once into an owned buffer (the
// transport stream is not re-readable), parsed, and validated. On any
// failure the request is aborted with a 400 and the handler never runs. On
// success the buffered bytes are reinstalled as a fresh body so the handler
// can bind the payload normally.
func ValidateBody(registry *validation.Registry, bindings validation.Bindings, operation string) gin.HandlerFunc {
	entityKey, bound := bindings.EntityFor(operation)

	return func(c *gin.Context) {
		if !bound {
			c.Next()
			return
		}

		rules, err := registry.Resolve(entityKey)
		if err != nil {
			// A binding that names an unregistered entity is a deployment
			// defect; the request still cannot proceed.
			abortValidation(c, "entidad no reconocida", nil)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortValidation(c, "no se pudo leer el cuerpo de la solicitud", nil)
			return
		}

		payload, err := validation.ParsePayload(body)
		if err != nil {
			abortValidation(c, "JSON mal formado", nil)
			return
		}

		if violations := validation.Validate(payload, rules); len(violations) > 0 {
			abortValidation(c, "la solicitud contiene campos inválidos", violations)
			return
		}

		// The handler decodes the body itself, so the captured bytes must be
		// reinstalled as an unread stream before passing through.
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}

func abortValidation(c *gin.Context, message string, violations []string) {
	resp := gin.H{"success": false, "message": message}
	if len(violations) > 0 {
		resp["data"] = violations
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}
