// Package memory is an in-process implementation of the storage ports. It backs
// the memory storage driver and the service tests. A single mutex serializes
// every operation, so each call observes one consistent snapshot and the
// conditional writes are trivially atomic.
package memory

import (
	"fmt"
	"sync"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
)

// Operation names passed to a FaultFunc.
const (
	OpSaveEvent     = "SaveEvent"
	OpPatchEvent    = "PatchEvent"
	OpSetBlock      = "SetEventBlock"
	OpTransition    = "TransitionEventStatus"
	OpFindEvent     = "FindEventByID"
	OpQueryEvents   = "QueryEvents"
	OpAttachEvent   = "AttachEvent"
	OpCreateChain   = "CreateChainAndAttach"
	OpFindChain     = "FindChain"
	OpSaveDecision  = "SaveDecision"
	OpListDecisions = "ListDecisions"
	OpDeactivate    = "DeactivateDecision"
)

// FaultFunc lets tests make an operation fail for a given id. Returning nil lets
// the operation proceed.
type FaultFunc func(op, id string) error

// Store holds events, decisions and chains in memory.
type Store struct {
	mu sync.Mutex

	events    map[string]*eventRow
	decisions []*decisionRow
	chains    map[string]*chainRow

	fault FaultFunc
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		events: map[string]*eventRow{},
		chains: map[string]*chainRow{},
	}
}

// Ensure Store implements every repository facade
var (
	_ portsrepo.EventRepositoryFacade    = (*Store)(nil)
	_ portsrepo.DecisionRepositoryFacade = (*Store)(nil)
	_ portsrepo.ChainRepositoryFacade    = (*Store)(nil)
)

// Provider exposes the store through the repository provider used by the service container.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EventRepo:    s,
		DecisionRepo: s,
		ChainRepo:    s,
	}
}

// SetFault installs (or, with nil, removes) a fault hook.
func (s *Store) SetFault(f FaultFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = f
}

// checkFault must be called with s.mu held.
func (s *Store) checkFault(op, id string) error {
	if s.fault == nil {
		return nil
	}
	if err := s.fault(op, id); err != nil {
		return apperrors.Storage(fmt.Sprintf("memory store: %s %s", op, id), err)
	}
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, apperrors.ErrNotFound)
}
