// Package noop is the default ReportArchive: it keeps nothing and logs
// what it would have stored.
package noop

import (
	"context"
	"encoding/json"
	"log"

	"credigate/internal/domain"
	"credigate/internal/port"
)

type noopArchive struct{}

// NewNoopArchive creates a ReportArchive that discards payloads.
func NewNoopArchive() port.ReportArchive {
	return &noopArchive{}
}

func (a *noopArchive) Put(_ context.Context, protocol string, payload json.RawMessage) error {
	log.Printf("[NOOP ARCHIVE] would store report %s (%d bytes)", protocol, len(payload))
	return nil
}

func (a *noopArchive) Get(_ context.Context, _ string) (json.RawMessage, error) {
	return nil, domain.ErrReportNotArchived
}
