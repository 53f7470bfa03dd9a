package validation

// Bindings maps an operation identifier to the entity key whose rules govern
// its request body. The router consults this table when attaching the
// validation middleware; operations without an entry are never intercepted.
type Bindings map[string]string

// DefaultBindings covers every write operation exposed by the API.
var DefaultBindings = Bindings{
	"usuarios.create":    "usuario",
	"usuarios.update":    "usuario",
	"estados.create":     "estado",
	"estados.update":     "estado",
	"inventarios.create": "inventario",
	"inventarios.update": "inventario",
	"ubicaciones.create": "ubicacion",
	"ubicaciones.update": "ubicacion",
	"elementos.create":   "elemento",
	"elementos.update":   "elemento",
	"reportes.create":    "reporte",
	"reportes.update":    "reporte",
}

// EntityFor returns the entity key bound to an operation, if any.
func (b Bindings) EntityFor(operation string) (string, bool) {
	key, ok := b[operation]
	return key, ok
}
