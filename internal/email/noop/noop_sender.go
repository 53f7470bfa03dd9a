package noop

import (
	"context"
	"log"

	"inventario/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs access codes to stdout.
func NewNoopSender() port.EmailSender {
	return noopSender{}
}

func (noopSender) SendAccessCodeEmail(_ context.Context, toEmail, inventoryName, code string, validHours int) error {
	log.Printf("[NOOP EMAIL] Access code for %s (inventory %q): %s (valid %dh)", toEmail, inventoryName, code, validHours)
	return nil
}
