package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"inventario/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendAccessCodeEmail(ctx context.Context, toEmail, inventoryName, code string, validHours int) error {
	subject := fmt.Sprintf("Invitación al inventario %q", inventoryName)
	htmlBody := buildAccessCodeHTML(inventoryName, code, validHours)
	textBody := fmt.Sprintf(
		"Has sido invitado al inventario %q.\n\nCódigo de acceso: %s\n\nEl código expira en %d horas.",
		inventoryName, code, validHours)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildAccessCodeHTML(inventoryName, code string, validHours int) string {
	return fmt.Sprintf(`<html><body>
<p>Has sido invitado al inventario <strong>%s</strong>.</p>
<p>Código de acceso: <strong style="font-size:1.4em;letter-spacing:2px">%s</strong></p>
<p>El código expira en %d horas.</p>
</body></html>`, inventoryName, code, validHours)
}
