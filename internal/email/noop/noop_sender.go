package noop

import (
	"context"
	"log"

	"credigate/internal/domain"
	"credigate/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReportEmail(_ context.Context, toEmail, protocol string, status domain.CreditStatus) error {
	log.Printf("[NOOP EMAIL] report %s (%s) ready for %s", protocol, status, toEmail)
	return nil
}
