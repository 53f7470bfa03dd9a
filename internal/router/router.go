package router

import (
	"github.com/gin-gonic/gin"

	"inventario/internal/domain"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/internal/service"
	"inventario/internal/validation"
)

// Setup configures the Gin engine with all routes and middleware. Every
// write route carries a body validation filter bound to its entity's
// rule set.
func Setup(
	authSvc service.AuthService,
	registry *validation.Registry,
	bindings validation.Bindings,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	stateH *handler.StateHandler,
	inventoryH *handler.InventoryHandler,
	locationH *handler.LocationHandler,
	elementH *handler.ElementHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	validate := func(operation string) gin.HandlerFunc {
		return middleware.ValidateBody(registry, bindings, operation)
	}

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)

	// User management (admin only except self lookup)
	users := protected.Group("/usuarios")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), validate("usuarios.create"), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", validate("usuarios.update"), userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// Element state catalog
	states := protected.Group("/estados")
	states.POST("", validate("estados.create"), stateH.Create)
	states.GET("", stateH.List)
	states.GET("/:id", stateH.GetByID)
	states.PUT("/:id", validate("estados.update"), stateH.Update)
	states.DELETE("/:id", stateH.Delete)

	// Inventories and their nested resources
	inventories := protected.Group("/inventarios")
	inventories.POST("", validate("inventarios.create"), inventoryH.Create)
	inventories.GET("", inventoryH.List)
	inventories.POST("/unirse", inventoryH.Join)
	inventories.GET("/:id", inventoryH.GetByID)
	inventories.PUT("/:id", validate("inventarios.update"), inventoryH.Update)
	inventories.DELETE("/:id", inventoryH.Delete)
	inventories.POST("/:id/compartir", inventoryH.Share)

	inventories.POST("/:id/ubicaciones", validate("ubicaciones.create"), locationH.Create)
	inventories.GET("/:id/ubicaciones", locationH.ListByInventory)
	inventories.POST("/:id/elementos", validate("elementos.create"), elementH.Create)
	inventories.GET("/:id/elementos", elementH.ListByInventory)
	inventories.POST("/:id/reportes", validate("reportes.create"), reportH.Create)
	inventories.GET("/:id/reportes", reportH.ListByInventory)

	// Locations
	locations := protected.Group("/ubicaciones")
	locations.GET("/:id", locationH.GetByID)
	locations.PUT("/:id", validate("ubicaciones.update"), locationH.Update)
	locations.DELETE("/:id", locationH.Delete)

	// Elements
	elements := protected.Group("/elementos")
	elements.GET("/:id", elementH.GetByID)
	elements.PUT("/:id", validate("elementos.update"), elementH.Update)
	elements.DELETE("/:id", elementH.Delete)
	elements.POST("/:id/imagen", elementH.UploadImage)
	elements.GET("/:id/imagen", elementH.ImageURL)

	// Reports
	reports := protected.Group("/reportes")
	reports.GET("/:id", reportH.GetByID)
	reports.PUT("/:id", validate("reportes.update"), reportH.Update)
	reports.DELETE("/:id", reportH.Delete)
	reports.GET("/:id/csv", reportH.ExportCSV)
	reports.GET("/:id/xlsx", reportH.ExportXLSX)

	return r
}
