package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"inventario/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for element listings.
var columns = []string{
	"Elemento",
	"Descripción",
	"Serial",
	"Cantidad",
	"Disponible",
	"Fecha de adquisición",
}

// WriteCSV writes a report's element snapshot as CSV, prefixed with a BOM.
func WriteCSV(w io.Writer, rep *domain.Report, elements []domain.Element) error {
	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range elements {
		if err := cw.Write(elementRow(&elements[i])); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func elementRow(el *domain.Element) []string {
	available := "No"
	if el.Available {
		available = "Sí"
	}
	acquired := ""
	if el.AcquiredOn != nil {
		acquired = el.AcquiredOn.Format("2006-01-02")
	}
	return []string{
		el.Name,
		el.Description,
		el.Serial,
		strconv.Itoa(el.Quantity),
		available,
		acquired,
	}
}
