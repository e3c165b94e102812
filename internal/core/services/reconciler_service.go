package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/idgen"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/publisher"
)

const (
	tracerName = "github.com/quarzasiphix/ksef-ai-sub008/internal/core/services"

	defaultSearchLimit = 20
	maxSearchLimit     = 100
	defaultBatchLimit  = 500
)

// ChainNumberGenerator issues human-readable chain numbers.
type ChainNumberGenerator interface {
	ChainNumber() (string, error)
}

// reconcilerService assigns chains to orphaned events.
type reconcilerService struct {
	writeNotifier
	eventRepo  portsrepo.EventReader
	chainRepo  portsrepo.ChainRepositoryFacade
	numbers    ChainNumberGenerator
	engine     *enforcement.Engine
	tracer     trace.Tracer
	batchLimit int
}

// ReconcilerOption is a functional option for configuring the chain reconciler
type ReconcilerOption func(*reconcilerService)

// WithReconcilerPublisher sets the notification publisher
func WithReconcilerPublisher(pub publisher.Publisher) ReconcilerOption {
	return func(s *reconcilerService) {
		if pub != nil {
			s.publisher = pub
		}
	}
}

// WithReconcilerViewCache sets the view cache invalidated after attachments
func WithReconcilerViewCache(vc cache.ViewCache) ReconcilerOption {
	return func(s *reconcilerService) {
		if vc != nil {
			s.viewCache = vc
		}
	}
}

// WithChainNumbers sets the chain number generator
func WithChainNumbers(gen ChainNumberGenerator) ReconcilerOption {
	return func(s *reconcilerService) {
		if gen != nil {
			s.numbers = gen
		}
	}
}

// WithReconcilerEngine sets the clock source
func WithReconcilerEngine(engine *enforcement.Engine) ReconcilerOption {
	return func(s *reconcilerService) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithTracer sets the tracer used for reconciliation spans
func WithTracer(tracer trace.Tracer) ReconcilerOption {
	return func(s *reconcilerService) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithBatchLimit caps bulk reconciliation
func WithBatchLimit(limit int) ReconcilerOption {
	return func(s *reconcilerService) {
		if limit > 0 {
			s.batchLimit = limit
		}
	}
}

// NewReconcilerService creates a new chain reconciler.
func NewReconcilerService(eventRepo portsrepo.EventReader, chainRepo portsrepo.ChainRepositoryFacade, options ...ReconcilerOption) portssvc.ChainReconcilerSvc {
	svc := &reconcilerService{
		writeNotifier: newWriteNotifier(nil, nil),
		eventRepo:     eventRepo,
		chainRepo:     chainRepo,
		numbers:       idgen.NewGenerator(""),
		engine:        enforcement.NewEngine(nil),
		tracer:        otel.Tracer(tracerName),
		batchLimit:    defaultBatchLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ChainReconcilerSvc = (*reconcilerService)(nil)

// chainMatch is a chain found by one of the lookup strategies.
type chainMatch struct {
	chain  *domain.Chain
	method domain.AttachMethod
}

func (s *reconcilerService) AutoAttachEvent(ctx context.Context, eventID string) (result *domain.AttachResult, err error) {
	ctx, span := s.tracer.Start(ctx, "reconciler.auto_attach", trace.WithAttributes(attribute.String("ledger.event_id", eventID)))
	defer func() { endSpan(span, result, err) }()

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOrphaned() {
		return alreadyAttached(event), nil
	}

	match, err := s.findChain(ctx, event)
	if err != nil {
		s.LogError(ctx, err, "Chain lookup failed", slog.String("event_id", eventID))
		return nil, err
	}
	if match == nil {
		return s.attachToNewChain(ctx, event)
	}

	applied, stored, err := s.chainRepo.AttachEvent(ctx, event.ID, match.chain.ChainID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to attach event", slog.String("event_id", eventID), slog.String("chain_id", match.chain.ChainID))
		return nil, err
	}
	if !applied {
		return alreadyAttached(stored), nil
	}
	return s.attached(ctx, stored, match.chain.ChainID, match.method, false), nil
}

// findChain tries the strategies in priority order and returns the first hit.
func (s *reconcilerService) findChain(ctx context.Context, event *domain.Event) (*chainMatch, error) {
	type strategy struct {
		method domain.AttachMethod
		lookup func() (*domain.Chain, error)
	}
	profile := event.BusinessProfileID
	var strategies []strategy

	if objectID, ok := event.MetadataString(domain.MetaObjectID); ok {
		strategies = append(strategies, strategy{domain.AttachObjectRef, func() (*domain.Chain, error) {
			return s.chainRepo.FindChainByObjectID(ctx, profile, objectID)
		}})
	}
	if event.EntityType != "" && event.EntityID != "" {
		strategies = append(strategies, strategy{domain.AttachEntityRef, func() (*domain.Chain, error) {
			return s.chainRepo.FindChainByEntity(ctx, profile, event.EntityType, event.EntityID)
		}})
	}
	if invoiceID, ok := event.MetadataString(domain.MetaInvoiceID); ok {
		strategies = append(strategies, strategy{domain.AttachMetadataInvoice, func() (*domain.Chain, error) {
			return s.chainRepo.FindChainByEntity(ctx, profile, domain.EntityTypeInvoice, invoiceID)
		}})
	}
	if cashID, ok := event.MetadataString(domain.MetaCashDocumentID); ok {
		strategies = append(strategies, strategy{domain.AttachMetadataCash, func() (*domain.Chain, error) {
			return s.chainRepo.FindChainByEntity(ctx, profile, domain.EntityTypeCashDocument, cashID)
		}})
	}

	for _, st := range strategies {
		chain, err := st.lookup()
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &chainMatch{chain: chain, method: st.method}, nil
	}
	return nil, nil
}

func (s *reconcilerService) attachToNewChain(ctx context.Context, event *domain.Event) (*domain.AttachResult, error) {
	number, err := s.numbers.ChainNumber()
	if err != nil {
		return nil, err
	}
	title := event.DocumentNumber
	if title == "" {
		title = event.ActionSummary
	}
	chainType := event.EntityType
	if chainType == "" {
		chainType = string(event.EventType)
	}
	chain := domain.Chain{
		ChainID:           uuid.NewString(),
		BusinessProfileID: event.BusinessProfileID,
		ChainNumber:       number,
		ChainType:         chainType,
		Title:             title,
		State:             domain.ChainOpen,
		EntityType:        event.EntityType,
		EntityID:          event.EntityID,
		AnchorEventID:     event.ID,
		LastActivityAt:    event.OccurredAt,
		CreatedAt:         s.engine.Now(),
	}
	if objectID, ok := event.MetadataString(domain.MetaObjectID); ok {
		chain.ObjectID = &objectID
	}

	applied, stored, err := s.chainRepo.CreateChainAndAttach(ctx, chain, event.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to create chain", slog.String("event_id", event.ID))
		return nil, err
	}
	if !applied {
		return alreadyAttached(stored), nil
	}
	return s.attached(ctx, stored, chain.ChainID, domain.AttachNewChain, true), nil
}

func (s *reconcilerService) attached(ctx context.Context, event *domain.Event, chainID string, method domain.AttachMethod, created bool) *domain.AttachResult {
	result := &domain.AttachResult{
		EventID:         event.ID,
		Success:         true,
		ChainID:         &chainID,
		Method:          method,
		Confidence:      method.Confidence(),
		CreatedNewChain: created,
	}
	attrs := []any{
		slog.String("event_id", event.ID),
		slog.String("chain_id", chainID),
		slog.String("method", string(method)),
		slog.Float64("confidence", result.Confidence),
	}
	if result.NeedsReview() {
		s.LogWarn(ctx, "Event attached with low confidence, review recommended", attrs...)
	} else {
		s.LogInfo(ctx, "Event attached to chain", attrs...)
	}
	s.afterWrite(ctx, event.BusinessProfileID, publisher.TopicChainAttached, publisher.ChainAttached{
		EventID:         event.ID,
		ChainID:         chainID,
		Method:          method,
		Confidence:      result.Confidence,
		CreatedNewChain: created,
	})
	return result
}

// alreadyAttached reports the chain the event holds; the attachment that won is the outcome.
func alreadyAttached(event *domain.Event) *domain.AttachResult {
	chainID := *event.ChainID
	return &domain.AttachResult{
		EventID:    event.ID,
		Success:    true,
		ChainID:    &chainID,
		Method:     domain.AttachAlreadyAttached,
		Confidence: domain.AttachAlreadyAttached.Confidence(),
	}
}

func (s *reconcilerService) AttachEventToChain(ctx context.Context, eventID, chainID string, causationEventID *string, userID string) (result *domain.AttachResult, err error) {
	ctx, span := s.tracer.Start(ctx, "reconciler.manual_attach", trace.WithAttributes(
		attribute.String("ledger.event_id", eventID),
		attribute.String("ledger.chain_id", chainID),
	))
	defer func() { endSpan(span, result, err) }()

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	chain, err := s.chainRepo.FindChainByID(ctx, chainID)
	if err != nil {
		return nil, err
	}
	if chain.BusinessProfileID != event.BusinessProfileID {
		return nil, fmt.Errorf("chain %s belongs to another business profile: %w", chainID, apperrors.ErrValidation)
	}
	if causationEventID != nil && *causationEventID != "" {
		cause, err := s.eventRepo.FindEventByID(ctx, *causationEventID)
		if err != nil {
			return nil, err
		}
		if cause.BusinessProfileID != event.BusinessProfileID {
			return nil, fmt.Errorf("causation event %s belongs to another business profile: %w", *causationEventID, apperrors.ErrValidation)
		}
	} else {
		causationEventID = nil
	}
	if !event.IsOrphaned() {
		return alreadyAttached(event), nil
	}

	applied, stored, err := s.chainRepo.AttachEvent(ctx, eventID, chainID, causationEventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to attach event", slog.String("event_id", eventID), slog.String("chain_id", chainID))
		return nil, err
	}
	if !applied {
		s.LogInfo(ctx, "Manual attach lost to a concurrent attach", slog.String("event_id", eventID), slog.String("user_id", userID))
		return alreadyAttached(stored), nil
	}
	return s.attached(ctx, stored, chainID, domain.AttachManual, false), nil
}

func (s *reconcilerService) SearchChainsForAttach(ctx context.Context, query domain.ChainSearchQuery) ([]domain.ChainCandidate, error) {
	if strings.TrimSpace(query.BusinessProfileID) == "" {
		return nil, apperrors.NewValidationError("business_profile_id")
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	query.Text = strings.TrimSpace(query.Text)

	chains, err := s.chainRepo.SearchChains(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Chain search failed", slog.String("business_profile_id", query.BusinessProfileID))
		return nil, err
	}

	candidates := make([]domain.ChainCandidate, 0, len(chains))
	for _, c := range chains {
		score := RelevanceScore(c, query.Text)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, domain.ChainCandidate{Chain: c, RelevanceScore: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		if !a.Chain.LastActivityAt.Equal(b.Chain.LastActivityAt) {
			return a.Chain.LastActivityAt.After(b.Chain.LastActivityAt)
		}
		return a.Chain.ChainID < b.Chain.ChainID
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// RelevanceScore ranks a chain against search text: number matches beat title
// matches, which beat type matches. An empty text gives every chain a floor score
// so the most recently active chains are offered.
func RelevanceScore(c domain.Chain, text string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0.1
	}
	number := strings.ToLower(c.ChainNumber)
	title := strings.ToLower(c.Title)
	chainType := strings.ToLower(c.ChainType)

	score := 0.0
	bump := func(v float64) {
		if v > score {
			score = v
		}
	}
	switch {
	case number == text:
		bump(1.0)
	case strings.HasPrefix(number, text):
		bump(0.9)
	case strings.Contains(number, text):
		bump(0.75)
	}
	switch {
	case title == text:
		bump(0.85)
	case strings.Contains(title, text):
		bump(0.6)
	}
	switch {
	case chainType == text:
		bump(0.4)
	case strings.Contains(chainType, text):
		bump(0.3)
	}
	return score
}

func (s *reconcilerService) BulkAutoAttachOrphanedEvents(ctx context.Context, businessProfileID string, limit int) (*domain.BulkResult, error) {
	if strings.TrimSpace(businessProfileID) == "" {
		return nil, apperrors.NewValidationError("business_profile_id")
	}
	if limit <= 0 || limit > s.batchLimit {
		limit = s.batchLimit
	}

	ctx, span := s.tracer.Start(ctx, "reconciler.bulk_auto_attach", trace.WithAttributes(
		attribute.String("ledger.business_profile_id", businessProfileID),
		attribute.Int("ledger.limit", limit),
	))
	defer span.End()

	orphans, err := s.eventRepo.QueryEvents(ctx, domain.EventQuery{
		BusinessProfileID: businessProfileID,
		Orphaned:          domain.BoolPtr(true),
		Sort:              domain.SortOccurredAsc,
		Limit:             limit,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.LogError(ctx, err, "Failed to list orphaned events", slog.String("business_profile_id", businessProfileID))
		return nil, err
	}

	result := &domain.BulkResult{Results: make([]domain.AttachResult, 0, len(orphans))}
	for _, orphan := range orphans {
		if ctx.Err() != nil {
			result.Cancelled = true
			break
		}
		res, err := s.AutoAttachEvent(ctx, orphan.ID)
		if err != nil {
			result.Add(domain.AttachResult{EventID: orphan.ID, Success: false, Error: err.Error()})
			if ctx.Err() != nil {
				result.Cancelled = true
				break
			}
			continue
		}
		result.Add(*res)
	}

	span.SetAttributes(
		attribute.Int("ledger.processed", result.Processed),
		attribute.Int("ledger.attached", result.Attached),
		attribute.Int("ledger.failed", result.Failed),
		attribute.Bool("ledger.cancelled", result.Cancelled),
	)
	s.LogInfo(ctx, "Bulk reconciliation finished",
		slog.String("business_profile_id", businessProfileID),
		slog.Int("processed", result.Processed),
		slog.Int("attached", result.Attached),
		slog.Int("failed", result.Failed),
		slog.Bool("cancelled", result.Cancelled))
	return result, nil
}

func (s *reconcilerService) GetChain(ctx context.Context, chainID string) (*domain.Chain, error) {
	return s.chainRepo.FindChainByID(ctx, chainID)
}

func endSpan(span trace.Span, result *domain.AttachResult, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else if result != nil {
		span.SetAttributes(
			attribute.String("ledger.attach_method", string(result.Method)),
			attribute.Float64("ledger.confidence", result.Confidence),
		)
	}
	span.End()
}
