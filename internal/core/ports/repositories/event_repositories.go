package repositories

import (
	"context"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// EventReader defines read operations for event data
type EventReader interface {
	// FindEventByID retrieves an event by its ID. Returns apperrors.ErrNotFound if absent.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// QueryEvents returns the events matching the query, ordered and limited as the query says.
	// Every call observes a single consistent snapshot.
	QueryEvents(ctx context.Context, query domain.EventQuery) ([]domain.Event, error)
}

// EventWriter defines write operations for event data
type EventWriter interface {
	// SaveEvent inserts a new event. Inserting an id that already exists is a no-op
	// and reports created=false.
	SaveEvent(ctx context.Context, event domain.Event) (created bool, err error)

	// PatchEvent writes only the columns the patch sets, plus changes and updated_at, in
	// one statement against the current row. Metadata keys are merged into the stored map.
	// A patch that touches frozen fields applies only while the stored event is not posted;
	// otherwise it returns apperrors.ErrInvariantViolation.
	PatchEvent(ctx context.Context, eventID string, patch domain.EventPatch, changes map[string]any, updatedAt time.Time) error

	// SetEventBlock writes the block pair, changes and updated_at and nothing else.
	SetEventBlock(ctx context.Context, eventID string, blockedBy, blockedReason *string, changes map[string]any, updatedAt time.Time) error

	// TransitionEventStatus writes the new status fields only if the stored status still
	// equals from. Returns apperrors.ErrConflict when it does not.
	TransitionEventStatus(ctx context.Context, from domain.EventStatus, event domain.Event) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
