package validation

// Per-entity rule tables. Hand-authored, fixed at build time; adding an
// entity requires a code change here and a new registry entry.

func userRules() []Rule {
	return []Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 50, Kind: KindText},
		{Name: "usuario", Required: true, Minimum: 4, Maximum: 30, Kind: KindText},
		{Name: "correo", Required: true, Minimum: 5, Maximum: 100, Kind: KindText},
		{Name: "contrasena", Required: true, Minimum: 8, Maximum: 60, Kind: KindText},
		{Name: "activo", Required: false, Kind: KindBoolean},
	}
}

func stateRules() []Rule {
	return []Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 20, Kind: KindText},
	}
}

func inventoryRules() []Rule {
	return []Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 50, Kind: KindText},
		{Name: "descripcion", Required: false, Minimum: 0, Maximum: 255, Kind: KindText},
	}
}

func locationRules() []Rule {
	return []Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 50, Kind: KindText},
		{Name: "descripcion", Required: false, Minimum: 0, Maximum: 255, Kind: KindText},
		{Name: "capacidad", Required: false, Kind: KindNumber},
	}
}

func elementRules() []Rule {
	return []Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 50, Kind: KindText},
		{Name: "descripcion", Required: false, Minimum: 0, Maximum: 255, Kind: KindText},
		{Name: "serial", Required: false, Minimum: 4, Maximum: 30, Kind: KindText},
		{Name: "cantidad", Required: true, Kind: KindNumber},
		{Name: "disponible", Required: false, Kind: KindBoolean},
		{Name: "fechaAdquisicion", Required: false, Minimum: 10, Maximum: 10, Kind: KindDate},
	}
}

func reportRules() []Rule {
	return []Rule{
		{Name: "titulo", Required: true, Minimum: 5, Maximum: 100, Kind: KindText},
		{Name: "descripcion", Required: false, Minimum: 0, Maximum: 500, Kind: KindText},
		{Name: "fechaGeneracion", Required: false, Minimum: 10, Maximum: 10, Kind: KindDate},
	}
}
