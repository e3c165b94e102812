package services

import (
	"context"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// EventReaderSvc defines read operations of the event store
type EventReaderSvc interface {
	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
}

// EventWriterSvc defines write operations of the event store
type EventWriterSvc interface {
	// CreateEvent validates a draft and persists it as a captured, unposted event.
	CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error)

	// UpdateEvent applies a patch, refusing frozen fields once the event is posted.
	UpdateEvent(ctx context.Context, eventID string, patch domain.EventPatch, userID string) (*domain.Event, error)
}

// EventLifecycleSvc defines status and block management
type EventLifecycleSvc interface {
	// AdvanceStatus moves the event one step forward if every enforcement check passes.
	AdvanceStatus(ctx context.Context, eventID string, target domain.EventStatus, userID string, role domain.AuthorityLevel) (*domain.TransitionResult, error)

	// BlockEvent records an authority block on the event.
	BlockEvent(ctx context.Context, eventID, blockedBy, reason, userID string) (*domain.Event, error)

	// UnblockEvent clears the authority block.
	UnblockEvent(ctx context.Context, eventID, userID string) (*domain.Event, error)
}

// EventSvcFacade combines all event store service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
	EventLifecycleSvc
}
