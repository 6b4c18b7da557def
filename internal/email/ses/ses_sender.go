package ses

import (
	"context"
	"fmt"
	"net/url"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"credigate/internal/domain"
	"credigate/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendReportEmail(ctx context.Context, toEmail, protocol string, status domain.CreditStatus) error {
	reportURL := fmt.Sprintf("%s/relatorio?protocolo=%s", s.frontendURL, url.QueryEscape(protocol))

	subject := fmt.Sprintf("Sua consulta %s está pronta", protocol)
	htmlBody := buildReportHTML(protocol, status, reportURL)
	textBody := fmt.Sprintf(
		"Sua consulta de crédito foi concluída.\n\nProtocolo: %s\nSituação: %s\n\nVeja o relatório completo em:\n%s\n\nEquipe CrediGate",
		protocol, statusLabel(status), reportURL)

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

func statusLabel(status domain.CreditStatus) string {
	if status == domain.CreditStatusClear {
		return "Sem restrições"
	}
	return "Com restrições"
}

func buildReportHTML(protocol string, status domain.CreditStatus, reportURL string) string {
	return fmt.Sprintf(`<html><body style="font-family: sans-serif; color: #222;">
<h2>Sua consulta está pronta</h2>
<p>Protocolo: <strong>%s</strong></p>
<p>Situação: <strong>%s</strong></p>
<p><a href="%s" style="background:#1a73e8;color:#fff;padding:10px 18px;border-radius:4px;text-decoration:none;">Ver relatório completo</a></p>
<p style="color:#777;font-size:12px;">Equipe CrediGate</p>
</body></html>`, protocol, statusLabel(status), reportURL)
}
