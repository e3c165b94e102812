package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/publisher"
)

// eventService is the event store: it validates and persists events and drives
// their status machine through the enforcement engine.
type eventService struct {
	writeNotifier
	eventRepo    portsrepo.EventRepositoryFacade
	decisionRepo portsrepo.DecisionReader
	engine       *enforcement.Engine
}

// EventServiceOption is a functional option for configuring the event service
type EventServiceOption func(*eventService)

// WithEventPublisher sets the notification publisher
func WithEventPublisher(pub publisher.Publisher) EventServiceOption {
	return func(s *eventService) {
		if pub != nil {
			s.publisher = pub
		}
	}
}

// WithEventViewCache sets the view cache invalidated after writes
func WithEventViewCache(vc cache.ViewCache) EventServiceOption {
	return func(s *eventService) {
		if vc != nil {
			s.viewCache = vc
		}
	}
}

// WithEventEngine sets the enforcement engine (and with it the clock)
func WithEventEngine(engine *enforcement.Engine) EventServiceOption {
	return func(s *eventService) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// NewEventService creates a new event service.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, decisionRepo portsrepo.DecisionReader, options ...EventServiceOption) portssvc.EventSvcFacade {
	svc := &eventService{
		writeNotifier: newWriteNotifier(nil, nil),
		eventRepo:     eventRepo,
		decisionRepo:  decisionRepo,
		engine:        enforcement.NewEngine(nil),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure eventService implements the EventSvcFacade interface
var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	var extra []string
	if draft.EventType != "" && !draft.EventType.Valid() {
		extra = append(extra, "event_type")
	}
	if draft.Direction != "" && !draft.Direction.Valid() {
		extra = append(extra, "direction")
	}
	if draft.Source != "" && !draft.Source.Valid() {
		extra = append(extra, "source")
	}
	if err := validateStruct(draft, extra...); err != nil {
		s.LogDebug(ctx, "Event draft rejected", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.engine.Now()
	event := eventFromDraft(draft, now)

	created, err := s.eventRepo.SaveEvent(ctx, event)
	if err != nil {
		s.LogError(ctx, err, "Failed to save event", slog.String("event_id", event.ID))
		return nil, err
	}
	if !created {
		// Retry of an earlier create: hand back what is stored.
		s.LogInfo(ctx, "Event already exists, returning stored copy", slog.String("event_id", event.ID))
		return s.eventRepo.FindEventByID(ctx, event.ID)
	}

	s.LogInfo(ctx, "Event created",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.EventType)),
		slog.String("business_profile_id", event.BusinessProfileID))
	s.afterWrite(ctx, event.BusinessProfileID, publisher.TopicEventCreated, publisher.EventCreated{Event: &event})
	return &event, nil
}

func eventFromDraft(draft domain.EventDraft, now time.Time) domain.Event {
	id := draft.ID
	if id == "" {
		id = uuid.NewString()
	}
	recordedAt := now
	if draft.RecordedAt != nil && !draft.RecordedAt.IsZero() {
		recordedAt = *draft.RecordedAt
	}
	direction := draft.Direction
	if direction == "" {
		direction = domain.DirectionNeutral
	}
	source := draft.Source
	if source == "" {
		source = domain.SourceManual
	}
	metadata := draft.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	linked := draft.LinkedDocuments
	if linked == nil {
		linked = []string{}
	}
	var currency *string
	if draft.Currency != nil {
		c := *draft.Currency
		currency = &c
	}

	return domain.Event{
		ID:                id,
		BusinessProfileID: draft.BusinessProfileID,
		EventType:         draft.EventType,
		EventNumber:       draft.EventNumber,
		OccurredAt:        draft.OccurredAt,
		RecordedAt:        recordedAt,
		Amount:            draft.Amount,
		Currency:          currency,
		Direction:         direction,
		Posted:            false,
		NeedsAction:       true,
		Status:            domain.StatusCaptured,
		Source:            source,
		Classification:    draft.Classification,
		Category:          draft.Category,
		VATRate:           draft.VATRate,
		ActorID:           draft.ActorID,
		ActorName:         draft.ActorName,
		ActorRole:         draft.ActorRole,
		EntityType:        draft.EntityType,
		EntityID:          draft.EntityID,
		DocumentType:      draft.DocumentType,
		DocumentID:        draft.DocumentID,
		DocumentNumber:    draft.DocumentNumber,
		Counterparty:      draft.Counterparty,
		LinkedDocuments:   linked,
		ParentEventID:     draft.ParentEventID,
		ActionSummary:     draft.ActionSummary,
		Changes:           draft.Changes,
		Metadata:          metadata,
		IsMaterial:        draft.IsMaterial,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get event", slog.String("event_id", eventID))
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, patch domain.EventPatch, userID string) (*domain.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return event, nil
	}

	var invalid []string
	if patch.Direction != nil && !patch.Direction.Valid() {
		invalid = append(invalid, "direction")
	}
	if patch.Currency != nil && validate.Var(*patch.Currency, "iso4217") != nil {
		invalid = append(invalid, "currency")
	}
	if patch.OccurredAt != nil && patch.OccurredAt.IsZero() {
		invalid = append(invalid, "occurred_at")
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError(invalid...)
	}

	frozen := patch.TouchesFrozenFields()
	if frozen && (event.Posted || event.Status.IsBooked()) {
		s.LogInfo(ctx, "Rejected edit of posted event", slog.String("event_id", eventID), slog.String("user_id", userID))
		return nil, fmt.Errorf("event %s is posted; record a correcting event instead: %w", eventID, apperrors.ErrInvariantViolation)
	}

	changes := patch.Apply(event)
	changes["updated_by"] = userID

	// The write carries only the patched columns; the store re-checks posted for frozen fields.
	if err := s.eventRepo.PatchEvent(ctx, eventID, patch, changes, s.engine.Now()); err != nil {
		if errors.Is(err, apperrors.ErrInvariantViolation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, err
	}
	updated, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Event updated", slog.String("event_id", eventID), slog.Int("changed_fields", len(changes)-1))
	s.afterWrite(ctx, updated.BusinessProfileID, publisher.TopicEventUpdated, publisher.EventUpdated{Event: updated, Changes: changes})
	return updated, nil
}

func (s *eventService) AdvanceStatus(ctx context.Context, eventID string, target domain.EventStatus, userID string, role domain.AuthorityLevel) (*domain.TransitionResult, error) {
	if !target.Valid() {
		return nil, apperrors.NewValidationError("target_status")
	}
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	from := event.Status
	if next, ok := from.Next(); !ok || next != target {
		return nil, fmt.Errorf("cannot move event %s from %s to %s: %w", eventID, from, target, apperrors.ErrInvariantViolation)
	}

	check := s.engine.CanProgressStatus(event, target)
	if check.IsAllowed && (target == domain.StatusApproved || target == domain.StatusPosted) {
		decisions, err := s.decisionRepo.ListDecisions(ctx, event.BusinessProfileID, true)
		if err != nil {
			s.LogError(ctx, err, "Failed to load decisions", slog.String("business_profile_id", event.BusinessProfileID))
			return nil, err
		}
		if target == domain.StatusApproved {
			check = s.engine.CanUserApprove(event, role, decisions)
		} else {
			check = s.engine.CanPostEvent(event, decisions)
		}
	}
	if !check.IsAllowed {
		s.LogInfo(ctx, "Status advance blocked",
			slog.String("event_id", eventID),
			slog.String("target", string(target)),
			slog.String("code", string(check.Code)),
			slog.String("blocked_by", check.BlockedBy))
		return &domain.TransitionResult{Event: event, Check: check}, nil
	}

	updated := *event
	updated.Status = target
	if target == domain.StatusPosted {
		updated.Posted = true
		updated.NeedsAction = false
		if check.DecisionID != "" {
			decisionID := check.DecisionID
			updated.DecisionID = &decisionID
		}
	}
	updated.Changes = map[string]any{
		"status":          string(target),
		"previous_status": string(from),
		"updated_by":      userID,
	}
	updated.UpdatedAt = s.engine.Now()

	if err := s.eventRepo.TransitionEventStatus(ctx, from, updated); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Concurrent status change", slog.String("event_id", eventID), slog.String("from", string(from)))
		} else {
			s.LogError(ctx, err, "Failed to transition event", slog.String("event_id", eventID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Event status advanced",
		slog.String("event_id", eventID),
		slog.String("from", string(from)),
		slog.String("to", string(target)))
	s.afterWrite(ctx, updated.BusinessProfileID, publisher.TopicEventStatusChanged,
		publisher.EventStatusChanged{Event: &updated, From: from, To: target, By: userID})
	return &domain.TransitionResult{Event: &updated, Check: check}, nil
}

func (s *eventService) BlockEvent(ctx context.Context, eventID, blockedBy, reason, userID string) (*domain.Event, error) {
	var missing []string
	if strings.TrimSpace(blockedBy) == "" {
		missing = append(missing, "blocked_by")
	}
	if strings.TrimSpace(reason) == "" {
		missing = append(missing, "blocked_reason")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}
	return s.setBlock(ctx, eventID, &blockedBy, &reason, userID)
}

func (s *eventService) UnblockEvent(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	return s.setBlock(ctx, eventID, nil, nil, userID)
}

// setBlock writes the block pair; both are set or both are cleared.
func (s *eventService) setBlock(ctx context.Context, eventID string, blockedBy, reason *string, userID string) (*domain.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if blockedBy == nil && !event.IsBlocked() {
		return event, nil
	}

	changes := map[string]any{"blocked_by": nil, "blocked_reason": nil, "updated_by": userID}
	if blockedBy != nil {
		changes["blocked_by"] = *blockedBy
		changes["blocked_reason"] = *reason
	}

	if err := s.eventRepo.SetEventBlock(ctx, eventID, blockedBy, reason, changes, s.engine.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update event block", slog.String("event_id", eventID))
		return nil, err
	}
	updated, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Event block changed", slog.String("event_id", eventID), slog.Bool("blocked", blockedBy != nil))
	s.afterWrite(ctx, updated.BusinessProfileID, publisher.TopicEventUpdated, publisher.EventUpdated{Event: updated, Changes: changes})
	return updated, nil
}
