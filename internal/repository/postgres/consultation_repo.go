package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"credigate/internal/domain"
	"credigate/internal/port"
)

type consultationRepo struct {
	db *sqlx.DB
}

// NewConsultationRepo creates a PostgreSQL-backed ConsultationRepository.
func NewConsultationRepo(db *sqlx.DB) port.ConsultationRepository {
	return &consultationRepo{db: db}
}

func (r *consultationRepo) Create(ctx context.Context, c *domain.Consultation) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO consultations
		(id, slug, document_type, document_masked, status, protocol, error_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Slug, c.DocumentType, c.DocumentMasked, c.Status, c.Protocol, c.ErrorCode, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("consultationRepo.Create: %w", err)
	}
	return nil
}

func (r *consultationRepo) List(ctx context.Context, filter domain.ConsultationFilter) ([]domain.Consultation, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	idx := 1
	if filter.Slug != "" {
		where += fmt.Sprintf(" AND slug = $%d", idx)
		args = append(args, filter.Slug)
		idx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM consultations "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("consultationRepo.List count: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(
		"SELECT * FROM consultations %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, idx, idx+1)
	args = append(args, limit, filter.Offset)

	var consultations []domain.Consultation
	if err := r.db.SelectContext(ctx, &consultations, query, args...); err != nil {
		return nil, 0, fmt.Errorf("consultationRepo.List: %w", err)
	}
	return consultations, total, nil
}

func (r *consultationRepo) CountBySlug(ctx context.Context) ([]domain.SlugCount, error) {
	var counts []domain.SlugCount
	err := r.db.SelectContext(ctx, &counts,
		"SELECT slug, COUNT(*) AS count FROM consultations GROUP BY slug ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("consultationRepo.CountBySlug: %w", err)
	}
	return counts, nil
}
