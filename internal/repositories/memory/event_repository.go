package memory

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

type eventRow struct {
	event domain.Event
}

func (s *Store) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpFindEvent, eventID); err != nil {
		return nil, err
	}
	row, ok := s.events[eventID]
	if !ok {
		return nil, notFound("event", eventID)
	}
	e := cloneEvent(row.event)
	return &e, nil
}

func (s *Store) QueryEvents(ctx context.Context, query domain.EventQuery) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpQueryEvents, query.BusinessProfileID); err != nil {
		return nil, err
	}
	snapshot := make([]domain.Event, 0, len(s.events))
	for _, row := range s.events {
		if query.Matches(&row.event) {
			snapshot = append(snapshot, cloneEvent(row.event))
		}
	}
	return query.Apply(snapshot), nil
}

func (s *Store) SaveEvent(ctx context.Context, event domain.Event) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpSaveEvent, event.ID); err != nil {
		return false, err
	}
	if _, exists := s.events[event.ID]; exists {
		return false, nil
	}
	stored := cloneEvent(event)
	stored.ChainID = domain.NormalizeRef(stored.ChainID)
	stored.ParentEventID = domain.NormalizeRef(stored.ParentEventID)
	s.events[event.ID] = &eventRow{event: stored}
	return true, nil
}

func (s *Store) PatchEvent(ctx context.Context, eventID string, patch domain.EventPatch, changes map[string]any, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpPatchEvent, eventID); err != nil {
		return err
	}
	row, ok := s.events[eventID]
	if !ok {
		return notFound("event", eventID)
	}
	if patch.TouchesFrozenFields() && row.event.Posted {
		return fmt.Errorf("event %s is posted: %w", eventID, apperrors.ErrInvariantViolation)
	}

	updated := cloneEvent(row.event)
	patch.Apply(&updated)
	updated.Changes = changes
	updated.UpdatedAt = updatedAt
	row.event = cloneEvent(updated)
	return nil
}

func (s *Store) SetEventBlock(ctx context.Context, eventID string, blockedBy, blockedReason *string, changes map[string]any, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpSetBlock, eventID); err != nil {
		return err
	}
	row, ok := s.events[eventID]
	if !ok {
		return notFound("event", eventID)
	}
	row.event.BlockedBy = cloneString(blockedBy)
	row.event.BlockedReason = cloneString(blockedReason)
	row.event.Changes = maps.Clone(changes)
	row.event.UpdatedAt = updatedAt
	return nil
}

func (s *Store) TransitionEventStatus(ctx context.Context, from domain.EventStatus, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpTransition, event.ID); err != nil {
		return err
	}
	row, ok := s.events[event.ID]
	if !ok {
		return notFound("event", event.ID)
	}
	if row.event.Status != from {
		return fmt.Errorf("event %s is %s, expected %s: %w", event.ID, row.event.Status, from, apperrors.ErrConflict)
	}
	row.event.Status = event.Status
	row.event.Posted = event.Posted
	row.event.NeedsAction = event.NeedsAction
	row.event.DecisionID = cloneString(event.DecisionID)
	row.event.Changes = maps.Clone(event.Changes)
	row.event.UpdatedAt = event.UpdatedAt
	return nil
}

func cloneEvent(e domain.Event) domain.Event {
	out := e
	out.EventNumber = cloneString(e.EventNumber)
	out.Currency = cloneString(e.Currency)
	out.DecisionID = cloneString(e.DecisionID)
	out.BlockedBy = cloneString(e.BlockedBy)
	out.BlockedReason = cloneString(e.BlockedReason)
	out.Classification = cloneString(e.Classification)
	out.Category = cloneString(e.Category)
	out.ActorName = cloneString(e.ActorName)
	out.ActorRole = cloneString(e.ActorRole)
	out.Counterparty = cloneString(e.Counterparty)
	out.ChainID = cloneString(e.ChainID)
	out.ParentEventID = cloneString(e.ParentEventID)
	if e.Amount != nil {
		a := *e.Amount
		out.Amount = &a
	}
	if e.VATRate != nil {
		v := *e.VATRate
		out.VATRate = &v
	}
	if e.LinkedDocuments != nil {
		out.LinkedDocuments = append([]string{}, e.LinkedDocuments...)
	}
	out.Changes = maps.Clone(e.Changes)
	out.Metadata = maps.Clone(e.Metadata)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
