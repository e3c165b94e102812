package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/models"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/utils/mapping"
)

const decisionColumns = `decision_id, business_profile_id, decision_type, title, authority_level, allows_actions,
	expense_limit, period_start, period_end, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxDecisionRepository struct {
	BaseRepository
}

func newPgxDecisionRepository(pool *pgxpool.Pool) *PgxDecisionRepository {
	return &PgxDecisionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DecisionRepositoryFacade = (*PgxDecisionRepository)(nil)

// SaveDecision inserts a decision; an existing id is left untouched.
func (r *PgxDecisionRepository) SaveDecision(ctx context.Context, decision domain.Decision) error {
	m := mapping.ToModelDecision(decision)
	query := `
		INSERT INTO decisions (` + decisionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (decision_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DecisionID, m.BusinessProfileID, m.DecisionType, m.Title, m.AuthorityLevel, m.AllowsActions,
		m.ExpenseLimit, m.PeriodStart, m.PeriodEnd, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return storageError("failed to save decision %s", err, m.DecisionID)
	}
	return nil
}

// FindDecisionByID retrieves a decision by its ID.
func (r *PgxDecisionRepository) FindDecisionByID(ctx context.Context, decisionID string) (*domain.Decision, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+decisionColumns+` FROM decisions WHERE decision_id = $1`, decisionID)
	if err != nil {
		return nil, storageError("failed to find decision %s", err, decisionID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Decision])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("decision %s: %w", decisionID, apperrors.ErrNotFound)
		}
		return nil, storageError("failed to scan decision %s", err, decisionID)
	}
	d := mapping.ToDomainDecision(m)
	return &d, nil
}

// ListDecisions returns a profile's decisions in creation order.
func (r *PgxDecisionRepository) ListDecisions(ctx context.Context, businessProfileID string, activeOnly bool) ([]domain.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE business_profile_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY seq`

	rows, err := r.Pool.Query(ctx, query, businessProfileID)
	if err != nil {
		return nil, storageError("failed to list decisions", err)
	}
	modelDecisions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Decision])
	if err != nil {
		return nil, storageError("failed to scan decisions", err)
	}
	decisions := make([]domain.Decision, len(modelDecisions))
	for i, m := range modelDecisions {
		decisions[i] = mapping.ToDomainDecision(m)
	}
	return decisions, nil
}

// DeactivateDecision marks a decision inactive.
func (r *PgxDecisionRepository) DeactivateDecision(ctx context.Context, decisionID string, userID string, now time.Time) error {
	query := `
		UPDATE decisions SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE decision_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, decisionID, now, userID)
	if err != nil {
		return storageError("failed to deactivate decision %s", err, decisionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("decision %s: %w", decisionID, apperrors.ErrNotFound)
	}
	return nil
}
