package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendAccessCodeEmail(ctx context.Context, toEmail, inventoryName, code string, validHours int) error
}
