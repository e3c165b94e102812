package services

import (
	"context"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// ChainReconcilerSvc assigns causal chains to orphaned events.
type ChainReconcilerSvc interface {
	// AutoAttachEvent tries object_ref, entity_ref, metadata and finally new_chain.
	AutoAttachEvent(ctx context.Context, eventID string) (*domain.AttachResult, error)

	// AttachEventToChain attaches manually; a no-op success if the event already has a chain.
	AttachEventToChain(ctx context.Context, eventID, chainID string, causationEventID *string, userID string) (*domain.AttachResult, error)

	// SearchChainsForAttach ranks candidate chains for manual selection.
	SearchChainsForAttach(ctx context.Context, query domain.ChainSearchQuery) ([]domain.ChainCandidate, error)

	// BulkAutoAttachOrphanedEvents auto-attaches up to limit orphans. Per-item failures are
	// recorded in the result; cancellation stops the batch and returns partial counts.
	BulkAutoAttachOrphanedEvents(ctx context.Context, businessProfileID string, limit int) (*domain.BulkResult, error)

	// GetChain retrieves a chain by ID.
	GetChain(ctx context.Context, chainID string) (*domain.Chain, error)
}
