package port

import (
	"context"

	"credigate/internal/domain"
)

// EmailSender defines the contract for report delivery emails.
type EmailSender interface {
	SendReportEmail(ctx context.Context, toEmail, protocol string, status domain.CreditStatus) error
}
