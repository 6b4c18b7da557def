package service

import (
	"context"
	"fmt"
	"io"

	"credigate/internal/csvexport"
	"credigate/internal/domain"
	"credigate/internal/port"
)

// exportLimit caps how many rows a single export pulls.
const exportLimit = 10000

// HistoryService reads and exports the consultation history.
type HistoryService interface {
	List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error)
	Counts(ctx context.Context) ([]domain.SlugCount, error)
	ExportCSV(ctx context.Context, w io.Writer, filter domain.ConsultationFilter) error
	ExportXLSX(ctx context.Context, w io.Writer, filter domain.ConsultationFilter) error
}

type historyService struct {
	repo port.ConsultationRepository
}

// NewHistoryService creates a HistoryService over the history repository.
func NewHistoryService(repo port.ConsultationRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *historyService) Counts(ctx context.Context) ([]domain.SlugCount, error) {
	return s.repo.CountBySlug(ctx)
}

func (s *historyService) ExportCSV(ctx context.Context, w io.Writer, filter domain.ConsultationFilter) error {
	consultations, err := s.exportRows(ctx, filter)
	if err != nil {
		return err
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	writer := csvexport.NewWriter(w)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := writer.WriteConsultations(consultations); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return writer.Flush()
}

func (s *historyService) ExportXLSX(ctx context.Context, w io.Writer, filter domain.ConsultationFilter) error {
	consultations, err := s.exportRows(ctx, filter)
	if err != nil {
		return err
	}
	return csvexport.WriteXLSX(w, consultations)
}

func (s *historyService) exportRows(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, error) {
	filter.Offset = 0
	filter.Limit = exportLimit
	consultations, _, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("loading history for export: %w", err)
	}
	return consultations, nil
}
