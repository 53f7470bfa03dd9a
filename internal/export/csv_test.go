package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario/internal/domain"
	"inventario/internal/export"
)

func sampleElements() []domain.Element {
	acquired := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return []domain.Element{
		{
			Name:        "Taladro percutor",
			Description: "Marca X, 750W",
			Serial:      "TX-750-001",
			Quantity:    2,
			Available:   true,
			AcquiredOn:  &acquired,
		},
		{
			Name:      "Extensión 10m",
			Quantity:  5,
			Available: false,
		},
	}
}

func TestWriteCSV_ContentAndBOM(t *testing.T) {
	rep := &domain.Report{Title: "Inventario Q1"}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rep, sampleElements()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, export.BOM))

	records, err := csv.NewReader(bytes.NewReader(raw[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Elemento", "Descripción", "Serial", "Cantidad", "Disponible", "Fecha de adquisición"}, records[0])
	assert.Equal(t, []string{"Taladro percutor", "Marca X, 750W", "TX-750-001", "2", "Sí", "2024-03-15"}, records[1])
	assert.Equal(t, []string{"Extensión 10m", "", "", "5", "No", ""}, records[2])
}

func TestWriteCSV_EmptySnapshot(t *testing.T) {
	rep := &domain.Report{Title: "Vacío"}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rep, nil))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteXLSX_ProducesWorkbook(t *testing.T) {
	rep := &domain.Report{Title: "Inventario Q1", Description: "Corte al 31 de marzo"}

	buf, err := export.WriteXLSX(rep, sampleElements())
	require.NoError(t, err)
	// XLSX files are ZIP archives.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0x50, 0x4b}))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Inventario_Q1", export.SanitizeFilename("Inventario Q1"))
	assert.Equal(t, "Reporte_Anual", export.SanitizeFilename("  Reporte / Anual!  "))
	assert.Equal(t, "informe", export.SanitizeFilename("___informe___"))

	long := strings.Repeat("a", 150)
	assert.Len(t, export.SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	name := export.BuildFilename("Inventario Q1", "csv")
	assert.True(t, strings.HasPrefix(name, "Inventario_Q1_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
