package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/utils/pagination"
)

// View names, also used as cache namespaces.
const (
	viewLedger  = "ledger"
	viewInbox   = "inbox"
	viewInvoice = "invoice"
	viewExpense = "expense"
	viewAudit   = "audit"
	viewOrphan  = "orphan"
)

// viewService projects the event store. Every view is one EventQuery; the
// cache in front of it is keyed by the profile's write generation, so a cached
// page is always what a fresh query would return.
type viewService struct {
	BaseService
	eventRepo portsrepo.EventReader
	viewCache cache.ViewCache
}

// NewViewService creates a new view projector. A nil cache disables caching.
func NewViewService(eventRepo portsrepo.EventReader, viewCache cache.ViewCache) portssvc.ViewSvc {
	if viewCache == nil {
		viewCache = cache.NoopViewCache{}
	}
	return &viewService{eventRepo: eventRepo, viewCache: viewCache}
}

var _ portssvc.ViewSvc = (*viewService)(nil)

func (s *viewService) LedgerView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error) {
	q := ledgerQuery(filter)
	return s.page(ctx, viewLedger, q, filter.Limit, filter.NextToken)
}

func (s *viewService) InvoiceView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error) {
	q := ledgerQuery(filter)
	q.DocumentTypes = []string{domain.DocumentTypeInvoice}
	return s.page(ctx, viewInvoice, q, filter.Limit, filter.NextToken)
}

func (s *viewService) ExpenseView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error) {
	q := ledgerQuery(filter)
	q.DocumentTypes = []string{domain.DocumentTypeExpense}
	return s.page(ctx, viewExpense, q, filter.Limit, filter.NextToken)
}

func (s *viewService) AuditView(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error) {
	q := domain.EventQuery{
		BusinessProfileID: filter.BusinessProfileID,
		ActorID:           filter.ActorID,
		EventTypes:        filter.EventTypes,
		DocumentTypes:     filter.DocumentTypes,
		Counterparty:      filter.Counterparty,
		RecordedFrom:      filter.From,
		RecordedTo:        filter.To,
		Sort:              domain.SortRecordedDesc,
	}
	return s.page(ctx, viewAudit, q, filter.Limit, filter.NextToken)
}

func (s *viewService) InboxView(ctx context.Context, businessProfileID string, limit int, nextToken *string) (*domain.EventPage, error) {
	q := domain.EventQuery{
		BusinessProfileID: businessProfileID,
		Posted:            domain.BoolPtr(false),
		NeedsAction:       domain.BoolPtr(true),
		Sort:              domain.SortRecordedDesc,
	}
	return s.page(ctx, viewInbox, q, limit, nextToken)
}

func (s *viewService) OrphanView(ctx context.Context, businessProfileID string, limit int, nextToken *string) (*domain.EventPage, error) {
	q := domain.EventQuery{
		BusinessProfileID: businessProfileID,
		Orphaned:          domain.BoolPtr(true),
		Sort:              domain.SortRecordedDesc,
	}
	return s.page(ctx, viewOrphan, q, limit, nextToken)
}

func (s *viewService) ChainEvents(ctx context.Context, chainID string) ([]domain.Event, error) {
	if strings.TrimSpace(chainID) == "" {
		return nil, apperrors.NewValidationError("chain_id")
	}
	events, err := s.eventRepo.QueryEvents(ctx, domain.EventQuery{ChainID: chainID, Sort: domain.SortOccurredAsc})
	if err != nil {
		s.LogError(ctx, err, "Failed to list chain events", slog.String("chain_id", chainID))
		return nil, err
	}
	return events, nil
}

// ledgerQuery maps a filter onto the booked-events query ordered by economic date.
func ledgerQuery(filter domain.ViewFilter) domain.EventQuery {
	return domain.EventQuery{
		BusinessProfileID: filter.BusinessProfileID,
		Posted:            domain.BoolPtr(true),
		ActorID:           filter.ActorID,
		EventTypes:        filter.EventTypes,
		DocumentTypes:     filter.DocumentTypes,
		Counterparty:      filter.Counterparty,
		OccurredFrom:      filter.From,
		OccurredTo:        filter.To,
		Sort:              domain.SortOccurredDesc,
	}
}

// page runs q with keyset pagination, reading through the view cache.
func (s *viewService) page(ctx context.Context, view string, q domain.EventQuery, limit int, nextToken *string) (*domain.EventPage, error) {
	if strings.TrimSpace(q.BusinessProfileID) == "" {
		return nil, apperrors.NewValidationError("business_profile_id")
	}
	q.Limit = pagination.NormalizeLimit(limit)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(q.Sort, *nextToken)
		if err != nil {
			return nil, apperrors.NewAppError(400, "invalid next_token", fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		}
		q.After = &cursor
	}

	key, cacheable := s.cacheKey(ctx, view, q)
	if cacheable {
		if raw, ok, err := s.viewCache.Get(ctx, key); err != nil {
			s.LogError(ctx, err, "View cache read failed", slog.String("view", view))
		} else if ok {
			var cached domain.EventPage
			if err := json.Unmarshal(raw, &cached); err == nil {
				s.LogDebug(ctx, "View served from cache", slog.String("view", view))
				return &cached, nil
			}
		}
	}

	// One extra row tells whether another page exists.
	lookahead := q
	lookahead.Limit = q.Limit + 1
	events, err := s.eventRepo.QueryEvents(ctx, lookahead)
	if err != nil {
		s.LogError(ctx, err, "Failed to query view", slog.String("view", view))
		return nil, err
	}

	page := &domain.EventPage{Events: events}
	if len(events) > q.Limit {
		page.Events = events[:q.Limit]
		token := pagination.EncodeCursor(q.Sort, q.CursorFor(&page.Events[q.Limit-1]))
		page.NextToken = &token
	}

	if cacheable {
		if raw, err := json.Marshal(page); err == nil {
			if err := s.viewCache.Set(ctx, key, raw); err != nil {
				s.LogError(ctx, err, "View cache write failed", slog.String("view", view))
			}
		}
	}
	return page, nil
}

func (s *viewService) cacheKey(ctx context.Context, view string, q domain.EventQuery) (string, bool) {
	gen, err := s.viewCache.Generation(ctx, q.BusinessProfileID)
	if err != nil {
		s.LogError(ctx, err, "View cache generation lookup failed", slog.String("view", view))
		return "", false
	}
	key, err := cache.Key(q.BusinessProfileID, gen, view, q)
	if err != nil {
		return "", false
	}
	return key, true
}
