package dto

import (
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the data needed to record a new event.
// Mandatory fields are checked by the service so the response can list every
// missing one at once.
type CreateEventRequest struct {
	ID                string             `json:"id" binding:"omitempty,uuid"` // Optional, lets a client retry safely
	BusinessProfileID string             `json:"businessProfileID"`
	EventType         domain.EventType   `json:"eventType"`
	EventNumber       *string            `json:"eventNumber"`
	OccurredAt        time.Time          `json:"occurredAt"`
	Amount            *decimal.Decimal   `json:"amount"`
	Currency          *string            `json:"currency"`
	Direction         domain.Direction   `json:"direction"`
	Source            domain.EventSource `json:"source"`
	Classification    *string            `json:"classification"`
	Category          *string            `json:"category"`
	VATRate           *decimal.Decimal   `json:"vatRate"`
	ActorName         *string            `json:"actorName"`
	ActorRole         *string            `json:"actorRole"`
	EntityType        string             `json:"entityType"`
	EntityID          string             `json:"entityID"`
	DocumentType      string             `json:"documentType"`
	DocumentID        string             `json:"documentID"`
	DocumentNumber    string             `json:"documentNumber"`
	Counterparty      *string            `json:"counterparty"`
	LinkedDocuments   []string           `json:"linkedDocuments"`
	ParentEventID     *string            `json:"parentEventID"`
	ActionSummary     string             `json:"actionSummary"`
	Changes           map[string]any     `json:"changes"`
	Metadata          map[string]any     `json:"metadata"`
	IsMaterial        bool               `json:"isMaterial"`
}

// ToEventDraft converts the request into a draft recorded on behalf of actorID.
func (r CreateEventRequest) ToEventDraft(actorID string) domain.EventDraft {
	return domain.EventDraft{
		ID:                r.ID,
		BusinessProfileID: r.BusinessProfileID,
		EventType:         r.EventType,
		EventNumber:       r.EventNumber,
		OccurredAt:        r.OccurredAt,
		Amount:            r.Amount,
		Currency:          r.Currency,
		Direction:         r.Direction,
		Source:            r.Source,
		Classification:    r.Classification,
		Category:          r.Category,
		VATRate:           r.VATRate,
		ActorID:           actorID,
		ActorName:         r.ActorName,
		ActorRole:         r.ActorRole,
		EntityType:        r.EntityType,
		EntityID:          r.EntityID,
		DocumentType:      r.DocumentType,
		DocumentID:        r.DocumentID,
		DocumentNumber:    r.DocumentNumber,
		Counterparty:      r.Counterparty,
		LinkedDocuments:   r.LinkedDocuments,
		ParentEventID:     r.ParentEventID,
		ActionSummary:     r.ActionSummary,
		Changes:           r.Changes,
		Metadata:          r.Metadata,
		IsMaterial:        r.IsMaterial,
	}
}

// UpdateEventRequest defines the fields a client may patch.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEventRequest struct {
	Classification  *string           `json:"classification"`
	Category        *string           `json:"category"`
	VATRate         *decimal.Decimal  `json:"vatRate"`
	Counterparty    *string           `json:"counterparty"`
	Amount          *decimal.Decimal  `json:"amount"`
	Currency        *string           `json:"currency"`
	Direction       *domain.Direction `json:"direction"`
	OccurredAt      *time.Time        `json:"occurredAt"`
	EntityType      *string           `json:"entityType"`
	EntityID        *string           `json:"entityID"`
	DocumentType    *string           `json:"documentType"`
	DocumentID      *string           `json:"documentID"`
	DocumentNumber  *string           `json:"documentNumber"`
	NeedsAction     *bool             `json:"needsAction"`
	Metadata        map[string]any    `json:"metadata"`
	ActionSummary   *string           `json:"actionSummary"`
	IsMaterial      *bool             `json:"isMaterial"`
	LinkedDocuments []string          `json:"linkedDocuments"`
}

// ToEventPatch converts the request into a domain patch.
func (r UpdateEventRequest) ToEventPatch() domain.EventPatch {
	return domain.EventPatch{
		Classification:  r.Classification,
		Category:        r.Category,
		VATRate:         r.VATRate,
		Counterparty:    r.Counterparty,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Direction:       r.Direction,
		OccurredAt:      r.OccurredAt,
		EntityType:      r.EntityType,
		EntityID:        r.EntityID,
		DocumentType:    r.DocumentType,
		DocumentID:      r.DocumentID,
		DocumentNumber:  r.DocumentNumber,
		NeedsAction:     r.NeedsAction,
		Metadata:        r.Metadata,
		ActionSummary:   r.ActionSummary,
		IsMaterial:      r.IsMaterial,
		LinkedDocuments: r.LinkedDocuments,
	}
}

// AdvanceStatusRequest moves an event one step along its lifecycle.
type AdvanceStatusRequest struct {
	TargetStatus domain.EventStatus `json:"targetStatus" binding:"required"`
}

// BlockEventRequest marks an event as blocked by another entity.
type BlockEventRequest struct {
	BlockedBy string `json:"blockedBy" binding:"required"`
	Reason    string `json:"reason"`
}

// TransitionResponse is returned by a status change, allowed or not.
type TransitionResponse struct {
	Event *domain.Event `json:"event,omitempty"`
	Check domain.Check  `json:"check"`
}

// ToTransitionResponse converts a domain.TransitionResult to its DTO.
func ToTransitionResponse(res *domain.TransitionResult) TransitionResponse {
	return TransitionResponse{Event: res.Event, Check: res.Check}
}
