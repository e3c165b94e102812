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

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

func collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	modelEvents, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Event])
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, len(modelEvents))
	for i, m := range modelEvents {
		events[i] = mapping.ToDomainEvent(m)
	}
	return events, nil
}

// SaveEvent inserts a new event. An existing id is left untouched.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) (bool, error) {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37)
		ON CONFLICT (id) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.BusinessProfileID, m.EventType, m.EventNumber, m.OccurredAt, m.RecordedAt,
		m.Amount, m.Currency, m.Direction, m.Posted, m.NeedsAction, m.Status, m.DecisionID, m.BlockedBy, m.BlockedReason,
		m.Source, m.Classification, m.Category, m.VATRate, m.ActorID, m.ActorName, m.ActorRole,
		m.EntityType, m.EntityID, m.DocumentType, m.DocumentID, m.DocumentNumber, m.Counterparty, m.LinkedDocuments,
		m.ChainID, m.ParentEventID, m.ActionSummary, m.Changes, m.Metadata, m.IsMaterial, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return false, fmt.Errorf("event %s references a missing row: %w", m.ID, apperrors.ErrValidation)
		}
		return false, storageError("failed to save event %s", err, m.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// FindEventByID retrieves an event by its ID.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.findEvent(ctx, r.Pool, eventID, false)
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxEventRepository) findEvent(ctx context.Context, q querier, eventID string, forUpdate bool) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, storageError("failed to find event %s", err, eventID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Event])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
		}
		return nil, storageError("failed to scan event %s", err, eventID)
	}
	event := mapping.ToDomainEvent(m)
	return &event, nil
}

// QueryEvents runs the query as a single statement, so it reads one snapshot.
func (r *PgxEventRepository) QueryEvents(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	query, args := buildEventQuery(q)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to query events", err)
	}
	events, err := collectEvents(rows)
	if err != nil {
		return nil, storageError("failed to scan events", err)
	}
	return events, nil
}

// PatchEvent runs one UPDATE that sets only the patched columns, so a concurrent
// writer's changes to other columns survive. Frozen-field patches carry a NOT posted guard.
func (r *PgxEventRepository) PatchEvent(ctx context.Context, eventID string, patch domain.EventPatch, changes map[string]any, updatedAt time.Time) error {
	query, args, guarded := buildEventPatch(eventID, patch, changes, updatedAt)
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return storageError("failed to update event %s", err, eventID)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if _, err := r.FindEventByID(ctx, eventID); err != nil {
		return err
	}
	if guarded {
		return fmt.Errorf("event %s is posted: %w", eventID, apperrors.ErrInvariantViolation)
	}
	return fmt.Errorf("event %s was not updated: %w", eventID, apperrors.ErrConflict)
}

// SetEventBlock writes the block pair only.
func (r *PgxEventRepository) SetEventBlock(ctx context.Context, eventID string, blockedBy, blockedReason *string, changes map[string]any, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE events SET blocked_by = $2, blocked_reason = $3, changes = $4, updated_at = $5
		WHERE id = $1;
	`, eventID, blockedBy, blockedReason, changes, updatedAt)
	if err != nil {
		return storageError("failed to update block of event %s", err, eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
	}
	return nil
}

// TransitionEventStatus is a compare-and-set on the status column.
func (r *PgxEventRepository) TransitionEventStatus(ctx context.Context, from domain.EventStatus, event domain.Event) error {
	query := `
		UPDATE events SET
			status = $3, posted = $4, needs_action = $5, decision_id = $6, changes = $7, updated_at = $8
		WHERE id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		event.ID, string(from), string(event.Status), event.Posted, event.NeedsAction,
		event.DecisionID, event.Changes, event.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("event %s references an unknown decision: %w", event.ID, apperrors.ErrValidation)
		}
		return storageError("failed to transition event %s", err, event.ID)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	current, err := r.FindEventByID(ctx, event.ID)
	if err != nil {
		return err
	}
	return fmt.Errorf("event %s is %s, expected %s: %w", event.ID, current.Status, from, apperrors.ErrConflict)
}
