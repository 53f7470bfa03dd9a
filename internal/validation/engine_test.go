package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario/internal/validation"
)

func parse(t *testing.T, body string) validation.Payload {
	t.Helper()
	p, err := validation.ParsePayload([]byte(body))
	require.NoError(t, err)
	return p
}

func TestValidate_EmptyRules(t *testing.T) {
	p := parse(t, `{"nombre": "algo"}`)
	assert.Empty(t, validation.Validate(p, nil))
}

func TestValidate_RequiredFieldMissing(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 20, Kind: validation.KindText},
	}

	violations := validation.Validate(parse(t, `{}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'nombre' es obligatorio.", violations[0])
}

func TestValidate_OptionalFieldMissing(t *testing.T) {
	rules := []validation.Rule{
		{Name: "descripcion", Required: false, Minimum: 0, Maximum: 255, Kind: validation.KindText},
	}

	assert.Empty(t, validation.Validate(parse(t, `{}`), rules))
}

func TestValidate_TextWrongType(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 20, Kind: validation.KindText},
	}

	violations := validation.Validate(parse(t, `{"nombre": 42}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'nombre' debe ser una cadena de texto.", violations[0])
}

func TestValidate_TextTooShort(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 20, Kind: validation.KindText},
	}

	violations := validation.Validate(parse(t, `{"nombre": "ab"}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'nombre' debe tener al menos 3 caracteres.", violations[0])
}

func TestValidate_TextTooLong(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 5, Kind: validation.KindText},
	}

	violations := validation.Validate(parse(t, `{"nombre": "demasiado largo"}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'nombre' no debe exceder los 5 caracteres.", violations[0])
}

func TestValidate_TextBoundsAtLimits(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 5, Kind: validation.KindText},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"nombre": "abc"}`), rules))
	assert.Empty(t, validation.Validate(parse(t, `{"nombre": "abcde"}`), rules))
}

func TestValidate_TextRuneCount(t *testing.T) {
	// Multibyte characters count as one character each.
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 5, Kind: validation.KindText},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"nombre": "añejo"}`), rules))
}

func TestValidate_TextContradictoryBoundsBothFire(t *testing.T) {
	// A table with minimum > maximum can never be satisfied; both checks
	// report independently.
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 10, Maximum: 5, Kind: validation.KindText},
	}

	violations := validation.Validate(parse(t, `{"nombre": "siete.."}`), rules)

	require.Len(t, violations, 2)
	assert.Equal(t, "El campo 'nombre' debe tener al menos 10 caracteres.", violations[0])
	assert.Equal(t, "El campo 'nombre' no debe exceder los 5 caracteres.", violations[1])
}

func TestValidate_NumberAcceptsIntegerAndDecimal(t *testing.T) {
	rules := []validation.Rule{
		{Name: "cantidad", Required: true, Kind: validation.KindNumber},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"cantidad": 7}`), rules))
	assert.Empty(t, validation.Validate(parse(t, `{"cantidad": 3.5}`), rules))
	assert.Empty(t, validation.Validate(parse(t, `{"cantidad": -1}`), rules))
}

func TestValidate_NumberRejectsNumericString(t *testing.T) {
	rules := []validation.Rule{
		{Name: "cantidad", Required: true, Kind: validation.KindNumber},
	}

	violations := validation.Validate(parse(t, `{"cantidad": "7"}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'cantidad' debe ser numérico.", violations[0])
}

func TestValidate_NumberIgnoresBounds(t *testing.T) {
	// Numeric bounds are not range-checked; only the literal's type matters.
	rules := []validation.Rule{
		{Name: "cantidad", Required: true, Minimum: 1, Maximum: 10, Kind: validation.KindNumber},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"cantidad": 9999}`), rules))
}

func TestValidate_Boolean(t *testing.T) {
	rules := []validation.Rule{
		{Name: "disponible", Required: true, Kind: validation.KindBoolean},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"disponible": true}`), rules))
	assert.Empty(t, validation.Validate(parse(t, `{"disponible": false}`), rules))

	violations := validation.Validate(parse(t, `{"disponible": "true"}`), rules)
	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'disponible' debe ser booleano.", violations[0])
}

func TestValidate_DateValid(t *testing.T) {
	rules := []validation.Rule{
		{Name: "fechaAdquisicion", Required: true, Minimum: 10, Maximum: 10, Kind: validation.KindDate},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"fechaAdquisicion": "2024-02-29"}`), rules))
}

func TestValidate_DateWrongLength(t *testing.T) {
	rules := []validation.Rule{
		{Name: "fechaAdquisicion", Required: true, Minimum: 10, Maximum: 10, Kind: validation.KindDate},
	}

	violations := validation.Validate(parse(t, `{"fechaAdquisicion": "2024-1-05"}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'fechaAdquisicion' debe tener una longitud de 10 caracteres.", violations[0])
}

func TestValidate_DateNotAString(t *testing.T) {
	rules := []validation.Rule{
		{Name: "fechaAdquisicion", Required: true, Minimum: 10, Maximum: 10, Kind: validation.KindDate},
	}

	violations := validation.Validate(parse(t, `{"fechaAdquisicion": 20240105}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'fechaAdquisicion' debe tener una longitud de 10 caracteres.", violations[0])
}

func TestValidate_DateImpossibleCalendarDay(t *testing.T) {
	rules := []validation.Rule{
		{Name: "fechaAdquisicion", Required: true, Minimum: 10, Maximum: 10, Kind: validation.KindDate},
	}

	for _, s := range []string{"2024-02-30", "2023-02-29", "2024-13-01", "2024-00-10"} {
		violations := validation.Validate(parse(t, `{"fechaAdquisicion": "`+s+`"}`), rules)
		require.Len(t, violations, 1, "input %q", s)
		assert.Equal(t, "El campo 'fechaAdquisicion' debe ser una fecha válida con formato yyyy-MM-dd.", violations[0])
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Kind: validation.Kind("uuid")},
	}

	violations := validation.Validate(parse(t, `{"nombre": "x"}`), rules)

	require.Len(t, violations, 1)
	assert.Equal(t, "El campo 'nombre' tiene un tipo de dato no reconocido.", violations[0])
}

func TestValidate_AggregatesInRuleOrder(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 50, Kind: validation.KindText},
		{Name: "cantidad", Required: true, Kind: validation.KindNumber},
		{Name: "disponible", Required: false, Kind: validation.KindBoolean},
	}

	violations := validation.Validate(parse(t, `{"cantidad": "dos", "disponible": 1}`), rules)

	require.Len(t, violations, 3)
	assert.Equal(t, "El campo 'nombre' es obligatorio.", violations[0])
	assert.Equal(t, "El campo 'cantidad' debe ser numérico.", violations[1])
	assert.Equal(t, "El campo 'disponible' debe ser booleano.", violations[2])
}

func TestValidate_ExtraFieldsIgnored(t *testing.T) {
	rules := []validation.Rule{
		{Name: "nombre", Required: true, Minimum: 3, Maximum: 20, Kind: validation.KindText},
	}

	assert.Empty(t, validation.Validate(parse(t, `{"nombre": "valido", "extra": [1,2,3]}`), rules))
}

func TestParsePayload_Malformed(t *testing.T) {
	for _, body := range []string{``, `{`, `{"a":}`, `no es json`} {
		_, err := validation.ParsePayload([]byte(body))
		assert.ErrorIs(t, err, validation.ErrMalformedPayload, "input %q", body)
	}
}

func TestParsePayload_KeepsNumbersDistinctFromStrings(t *testing.T) {
	p := parse(t, `{"a": 1, "b": "1"}`)

	_, aIsString := p["a"].(string)
	_, bIsString := p["b"].(string)
	assert.False(t, aIsString)
	assert.True(t, bIsString)
}
