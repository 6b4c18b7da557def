package port

import (
	"context"

	"credigate/internal/domain"
)

// ConsultationRepository persists the consultation history.
type ConsultationRepository interface {
	Create(ctx context.Context, c *domain.Consultation) error
	List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error)
	CountBySlug(ctx context.Context) ([]domain.SlugCount, error)
}
