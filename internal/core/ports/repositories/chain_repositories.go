package repositories

import (
	"context"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// ChainReader defines read operations for causal chains
type ChainReader interface {
	// FindChainByID retrieves a chain by its ID.
	FindChainByID(ctx context.Context, chainID string) (*domain.Chain, error)

	// FindChainByObjectID finds the chain anchored on a business object.
	FindChainByObjectID(ctx context.Context, businessProfileID, objectID string) (*domain.Chain, error)

	// FindChainByEntity finds the chain tracking an entity.
	FindChainByEntity(ctx context.Context, businessProfileID, entityType, entityID string) (*domain.Chain, error)

	// SearchChains returns chains of a profile whose number, title or type contain the text
	// (case-insensitive). Ranking is left to the caller.
	SearchChains(ctx context.Context, query domain.ChainSearchQuery) ([]domain.Chain, error)
}

// ChainAttacher defines the compare-and-set writes of the reconciler
type ChainAttacher interface {
	// AttachEvent sets the event's chain (and parent, when causationEventID is given) only
	// if the event has no chain yet, bumping the chain's counters in the same transaction.
	// It returns whether this call applied the write, and the event as stored afterwards.
	AttachEvent(ctx context.Context, eventID, chainID string, causationEventID *string) (bool, *domain.Event, error)

	// CreateChainAndAttach creates the chain and attaches the event to it atomically, only
	// if the event is still orphaned. When it is not, no chain is created.
	CreateChainAndAttach(ctx context.Context, chain domain.Chain, eventID string) (bool, *domain.Event, error)
}

// ChainRepositoryFacade combines all chain-related repository interfaces
type ChainRepositoryFacade interface {
	ChainReader
	ChainAttacher
}
