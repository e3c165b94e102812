package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

type chainRow struct {
	chain domain.Chain
	seq   int
}

func (s *Store) FindChainByID(ctx context.Context, chainID string) (*domain.Chain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpFindChain, chainID); err != nil {
		return nil, err
	}
	row, ok := s.chains[chainID]
	if !ok {
		return nil, notFound("chain", chainID)
	}
	c := cloneChain(row.chain)
	return &c, nil
}

func (s *Store) FindChainByObjectID(ctx context.Context, businessProfileID, objectID string) (*domain.Chain, error) {
	return s.findChain(objectID, func(c *domain.Chain) bool {
		return c.BusinessProfileID == businessProfileID && c.ObjectID != nil && *c.ObjectID == objectID
	})
}

func (s *Store) FindChainByEntity(ctx context.Context, businessProfileID, entityType, entityID string) (*domain.Chain, error) {
	return s.findChain(entityType+"/"+entityID, func(c *domain.Chain) bool {
		return c.BusinessProfileID == businessProfileID && c.EntityType == entityType && c.EntityID == entityID
	})
}

// findChain returns the oldest chain satisfying match.
func (s *Store) findChain(ref string, match func(*domain.Chain) bool) (*domain.Chain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpFindChain, ref); err != nil {
		return nil, err
	}
	var found *chainRow
	for _, row := range s.chains {
		if !match(&row.chain) {
			continue
		}
		if found == nil || row.seq < found.seq {
			found = row
		}
	}
	if found == nil {
		return nil, notFound("chain", ref)
	}
	c := cloneChain(found.chain)
	return &c, nil
}

func (s *Store) SearchChains(ctx context.Context, query domain.ChainSearchQuery) ([]domain.Chain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpFindChain, query.Text); err != nil {
		return nil, err
	}
	text := strings.ToLower(strings.TrimSpace(query.Text))
	out := make([]domain.Chain, 0)
	for _, row := range s.chains {
		c := &row.chain
		if c.BusinessProfileID != query.BusinessProfileID {
			continue
		}
		if query.ChainType != "" && c.ChainType != query.ChainType {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(c.ChainNumber), text) &&
			!strings.Contains(strings.ToLower(c.Title), text) &&
			!strings.Contains(strings.ToLower(c.ChainType), text) {
			continue
		}
		out = append(out, cloneChain(*c))
	}
	return out, nil
}

func (s *Store) AttachEvent(ctx context.Context, eventID, chainID string, causationEventID *string) (bool, *domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpAttachEvent, eventID); err != nil {
		return false, nil, err
	}
	evRow, ok := s.events[eventID]
	if !ok {
		return false, nil, notFound("event", eventID)
	}
	if !evRow.event.IsOrphaned() {
		e := cloneEvent(evRow.event)
		return false, &e, nil
	}
	chRow, ok := s.chains[chainID]
	if !ok {
		return false, nil, notFound("chain", chainID)
	}

	evRow.event.ChainID = &chainID
	if causationEventID != nil {
		evRow.event.ParentEventID = cloneString(causationEventID)
	}
	touch(&chRow.chain, &evRow.event)

	e := cloneEvent(evRow.event)
	return true, &e, nil
}

func (s *Store) CreateChainAndAttach(ctx context.Context, chain domain.Chain, eventID string) (bool, *domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpCreateChain, eventID); err != nil {
		return false, nil, err
	}
	evRow, ok := s.events[eventID]
	if !ok {
		return false, nil, notFound("event", eventID)
	}
	if !evRow.event.IsOrphaned() {
		e := cloneEvent(evRow.event)
		return false, &e, nil
	}
	if _, exists := s.chains[chain.ChainID]; exists {
		return false, nil, fmt.Errorf("chain %s: %w", chain.ChainID, apperrors.ErrDuplicate)
	}

	row := &chainRow{chain: cloneChain(chain), seq: len(s.chains)}
	row.chain.EventCount = 0
	s.chains[chain.ChainID] = row

	chainID := chain.ChainID
	evRow.event.ChainID = &chainID
	touch(&row.chain, &evRow.event)

	e := cloneEvent(evRow.event)
	return true, &e, nil
}

// touch records one more event on the chain.
func touch(c *domain.Chain, e *domain.Event) {
	c.EventCount++
	if e.OccurredAt.After(c.LastActivityAt) {
		c.LastActivityAt = e.OccurredAt
	}
}

func cloneChain(c domain.Chain) domain.Chain {
	out := c
	out.ObjectID = cloneString(c.ObjectID)
	return out
}
