package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/models"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/utils/mapping"
)

const chainColumns = `chain_id, business_profile_id, chain_number, chain_type, title, state, object_id,
	entity_type, entity_id, anchor_event_id, event_count, last_activity_at, created_at`

// searchCandidateCap bounds how many chains a search pulls before ranking.
const searchCandidateCap = 1000

type PgxChainRepository struct {
	BaseRepository
	events *PgxEventRepository
}

func newPgxChainRepository(pool *pgxpool.Pool, events *PgxEventRepository) *PgxChainRepository {
	return &PgxChainRepository{BaseRepository: BaseRepository{Pool: pool}, events: events}
}

var _ portsrepo.ChainRepositoryFacade = (*PgxChainRepository)(nil)

func (r *PgxChainRepository) findOne(ctx context.Context, ref, where string, args ...any) (*domain.Chain, error) {
	query := `SELECT ` + chainColumns + ` FROM chains WHERE ` + where + ` ORDER BY seq LIMIT 1`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to find chain %s", err, ref)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Chain])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("chain %s: %w", ref, apperrors.ErrNotFound)
		}
		return nil, storageError("failed to scan chain %s", err, ref)
	}
	chain := mapping.ToDomainChain(m)
	return &chain, nil
}

func (r *PgxChainRepository) FindChainByID(ctx context.Context, chainID string) (*domain.Chain, error) {
	return r.findOne(ctx, chainID, `chain_id = $1`, chainID)
}

func (r *PgxChainRepository) FindChainByObjectID(ctx context.Context, businessProfileID, objectID string) (*domain.Chain, error) {
	return r.findOne(ctx, objectID, `business_profile_id = $1 AND object_id = $2`, businessProfileID, objectID)
}

func (r *PgxChainRepository) FindChainByEntity(ctx context.Context, businessProfileID, entityType, entityID string) (*domain.Chain, error) {
	return r.findOne(ctx, entityType+"/"+entityID,
		`business_profile_id = $1 AND entity_type = $2 AND entity_id = $3`, businessProfileID, entityType, entityID)
}

// SearchChains returns unranked candidates, most recently active first.
func (r *PgxChainRepository) SearchChains(ctx context.Context, q domain.ChainSearchQuery) ([]domain.Chain, error) {
	var args argList
	where := []string{"business_profile_id = " + args.add(q.BusinessProfileID)}
	if q.ChainType != "" {
		where = append(where, "chain_type = "+args.add(q.ChainType))
	}
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		p := args.add(text)
		where = append(where, fmt.Sprintf(
			"(strpos(lower(chain_number), %[1]s) > 0 OR strpos(lower(title), %[1]s) > 0 OR strpos(lower(chain_type), %[1]s) > 0)", p))
	}
	query := `SELECT ` + chainColumns + ` FROM chains WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY last_activity_at DESC LIMIT ` + args.add(searchCandidateCap)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to search chains", err)
	}
	modelChains, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Chain])
	if err != nil {
		return nil, storageError("failed to scan chains", err)
	}
	chains := make([]domain.Chain, len(modelChains))
	for i, m := range modelChains {
		chains[i] = mapping.ToDomainChain(m)
	}
	return chains, nil
}

// AttachEvent sets chain_id only while it is still NULL and bumps the chain's counters
// in the same transaction.
func (r *PgxChainRepository) AttachEvent(ctx context.Context, eventID, chainID string, causationEventID *string) (bool, *domain.Event, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, nil, err
	}
	defer r.Rollback(ctx, tx)

	event, err := r.events.findEvent(ctx, tx, eventID, true)
	if err != nil {
		return false, nil, err
	}
	if !event.IsOrphaned() {
		return false, event, nil
	}

	tag, err := tx.Exec(ctx, `
		UPDATE events SET chain_id = $2, parent_event_id = COALESCE($3, parent_event_id)
		WHERE id = $1 AND chain_id IS NULL;
	`, eventID, chainID, causationEventID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return false, nil, fmt.Errorf("chain %s: %w", chainID, apperrors.ErrNotFound)
		}
		return false, nil, storageError("failed to attach event %s", err, eventID)
	}
	if tag.RowsAffected() != 1 {
		return false, nil, fmt.Errorf("event %s changed during attach: %w", eventID, apperrors.ErrConflict)
	}
	if err := touchChain(ctx, tx, chainID, event); err != nil {
		return false, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return false, nil, err
	}

	event.ChainID = &chainID
	if causationEventID != nil {
		event.ParentEventID = causationEventID
	}
	return true, event, nil
}

// CreateChainAndAttach inserts the chain and attaches its anchor event atomically. Nothing
// is written when the event already has a chain.
func (r *PgxChainRepository) CreateChainAndAttach(ctx context.Context, chain domain.Chain, eventID string) (bool, *domain.Event, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, nil, err
	}
	defer r.Rollback(ctx, tx)

	event, err := r.events.findEvent(ctx, tx, eventID, true)
	if err != nil {
		return false, nil, err
	}
	if !event.IsOrphaned() {
		return false, event, nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO chains (`+chainColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12);
	`, chain.ChainID, chain.BusinessProfileID, chain.ChainNumber, chain.ChainType, chain.Title, string(chain.State),
		chain.ObjectID, chain.EntityType, chain.EntityID, chain.AnchorEventID, chain.LastActivityAt, chain.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return false, nil, fmt.Errorf("chain %s: %w", chain.ChainID, apperrors.ErrDuplicate)
		}
		return false, nil, storageError("failed to create chain %s", err, chain.ChainID)
	}
	if _, err := tx.Exec(ctx, `UPDATE events SET chain_id = $2 WHERE id = $1 AND chain_id IS NULL;`, eventID, chain.ChainID); err != nil {
		return false, nil, storageError("failed to attach event %s", err, eventID)
	}
	if err := touchChain(ctx, tx, chain.ChainID, event); err != nil {
		return false, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return false, nil, err
	}

	chainID := chain.ChainID
	event.ChainID = &chainID
	return true, event, nil
}

func touchChain(ctx context.Context, tx pgx.Tx, chainID string, event *domain.Event) error {
	_, err := tx.Exec(ctx, `
		UPDATE chains SET event_count = event_count + 1, last_activity_at = GREATEST(last_activity_at, $2)
		WHERE chain_id = $1;
	`, chainID, event.OccurredAt)
	if err != nil {
		return storageError("failed to update chain %s", err, chainID)
	}
	return nil
}
