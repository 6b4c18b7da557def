package service

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"

	"credigate/internal/apiclient"
	"credigate/internal/consulta"
	"credigate/internal/document"
	"credigate/internal/domain"
	"credigate/internal/port"
	"credigate/internal/session"
)

// CatalogEntry describes one consultation product for the catalog listing.
type CatalogEntry struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	DocumentTypes string `json:"documentTypes"`
	FieldName     string `json:"fieldName"`
	Description   string `json:"description"`
}

// ConsultationService runs consultations end to end: orchestration, history
// recording, report archiving, and optional delivery email.
type ConsultationService interface {
	Submit(ctx context.Context, tokens session.Store, slug string, form url.Values) (consulta.State, error)
	Catalog() []CatalogEntry
}

type consultationService struct {
	factory *consulta.Factory
	backend *apiclient.Client
	repo    port.ConsultationRepository
	archive port.ReportArchive
	email   port.EmailSender
}

// NewConsultationService creates a ConsultationService over the given
// transport and side-effect ports.
func NewConsultationService(
	factory *consulta.Factory,
	backend *apiclient.Client,
	repo port.ConsultationRepository,
	archive port.ReportArchive,
	email port.EmailSender,
) ConsultationService {
	return &consultationService{
		factory: factory,
		backend: backend,
		repo:    repo,
		archive: archive,
		email:   email,
	}
}

// reportHead is the minimal slice of a report the gateway itself reads.
type reportHead struct {
	Protocol string              `json:"protocol"`
	Status   domain.CreditStatus `json:"status"`
}

func (s *consultationService) Submit(ctx context.Context, tokens session.Store, slug string, form url.Values) (consulta.State, error) {
	auth := apiclient.NewAuthClient(s.backend, tokens)

	// The closure keeps the typed error so the history row can carry the
	// machine code even though the state machine only keeps the message.
	var remoteErr error
	call := func(ctx context.Context, path string) (json.RawMessage, error) {
		var payload json.RawMessage
		if err := auth.Get(ctx, path, &payload, nil); err != nil {
			remoteErr = err
			return nil, err
		}
		return payload, nil
	}

	orch := consulta.NewOrchestrator(s.factory)
	state, err := orch.Submit(ctx, slug, form, call)
	if err != nil {
		return state, err
	}
	if state.Invalid != "" {
		// Rejected before any network call; nothing to record.
		return state, nil
	}

	strat, _ := s.factory.Create(slug)
	digits := document.Normalize(form.Get(strat.FieldName()))
	s.record(ctx, slug, digits, state, remoteErr)

	if state.Status == consulta.StatusSuccess {
		s.afterSuccess(ctx, state.Payload, form.Get("email"))
	}
	return state, nil
}

// record persists the history row. History is best effort: a storage
// failure must not turn a completed consultation into an error.
func (s *consultationService) record(ctx context.Context, slug, digits string, state consulta.State, remoteErr error) {
	entry := &domain.Consultation{
		Slug:           slug,
		DocumentType:   string(document.Classify(digits)),
		DocumentMasked: maskDocument(digits),
	}
	switch state.Status {
	case consulta.StatusSuccess:
		entry.Status = domain.ConsultationStatusSuccess
		var head reportHead
		if err := json.Unmarshal(state.Payload, &head); err == nil {
			entry.Protocol = head.Protocol
		}
	case consulta.StatusError:
		entry.Status = domain.ConsultationStatusError
		if apiErr, ok := apiclient.AsError(remoteErr); ok {
			entry.ErrorCode = apiErr.Code
		}
	default:
		return
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("consultation history write failed: %v", err)
	}
}

// afterSuccess archives the payload and sends the optional delivery email.
// Both are best effort.
func (s *consultationService) afterSuccess(ctx context.Context, payload json.RawMessage, notifyEmail string) {
	var head reportHead
	if err := json.Unmarshal(payload, &head); err != nil || head.Protocol == "" {
		return
	}

	if err := s.archive.Put(ctx, head.Protocol, payload); err != nil {
		log.Printf("report archive failed for %s: %v", head.Protocol, err)
	}
	if notifyEmail != "" {
		if err := s.email.SendReportEmail(ctx, notifyEmail, head.Protocol, head.Status); err != nil {
			log.Printf("report email failed for %s: %v", head.Protocol, err)
		}
	}
}

func (s *consultationService) Catalog() []CatalogEntry {
	strategies := s.factory.All()
	out := make([]CatalogEntry, 0, len(strategies))
	for _, strat := range strategies {
		out = append(out, CatalogEntry{
			Slug:          strat.Slug(),
			Name:          strat.Name(),
			DocumentTypes: string(strat.DocumentTypes()),
			FieldName:     strat.FieldName(),
			Description:   strat.Description(),
		})
	}
	return out
}

// maskDocument keeps only the last four digits of a document.
func maskDocument(digits string) string {
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
