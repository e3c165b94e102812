package mapping

import (
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/models"
)

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		ID:                d.ID,
		BusinessProfileID: d.BusinessProfileID,
		EventType:         string(d.EventType),
		EventNumber:       d.EventNumber,
		OccurredAt:        d.OccurredAt,
		RecordedAt:        d.RecordedAt,
		Amount:            d.Amount,
		Currency:          d.Currency,
		Direction:         string(d.Direction),
		Posted:            d.Posted,
		NeedsAction:       d.NeedsAction,
		Status:            string(d.Status),
		DecisionID:        d.DecisionID,
		BlockedBy:         d.BlockedBy,
		BlockedReason:     d.BlockedReason,
		Source:            string(d.Source),
		Classification:    d.Classification,
		Category:          d.Category,
		VATRate:           d.VATRate,
		ActorID:           d.ActorID,
		ActorName:         d.ActorName,
		ActorRole:         d.ActorRole,
		EntityType:        d.EntityType,
		EntityID:          d.EntityID,
		DocumentType:      d.DocumentType,
		DocumentID:        d.DocumentID,
		DocumentNumber:    d.DocumentNumber,
		Counterparty:      d.Counterparty,
		LinkedDocuments:   nonNilStrings(d.LinkedDocuments),
		ChainID:           domain.NormalizeRef(d.ChainID),
		ParentEventID:     domain.NormalizeRef(d.ParentEventID),
		ActionSummary:     d.ActionSummary,
		Changes:           d.Changes,
		Metadata:          nonNilMap(d.Metadata),
		IsMaterial:        d.IsMaterial,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		ID:                m.ID,
		BusinessProfileID: m.BusinessProfileID,
		EventType:         domain.EventType(m.EventType),
		EventNumber:       m.EventNumber,
		OccurredAt:        m.OccurredAt.UTC(),
		RecordedAt:        m.RecordedAt.UTC(),
		Amount:            m.Amount,
		Currency:          m.Currency,
		Direction:         domain.Direction(m.Direction),
		Posted:            m.Posted,
		NeedsAction:       m.NeedsAction,
		Status:            domain.EventStatus(m.Status),
		DecisionID:        m.DecisionID,
		BlockedBy:         m.BlockedBy,
		BlockedReason:     m.BlockedReason,
		Source:            domain.EventSource(m.Source),
		Classification:    m.Classification,
		Category:          m.Category,
		VATRate:           m.VATRate,
		ActorID:           m.ActorID,
		ActorName:         m.ActorName,
		ActorRole:         m.ActorRole,
		EntityType:        m.EntityType,
		EntityID:          m.EntityID,
		DocumentType:      m.DocumentType,
		DocumentID:        m.DocumentID,
		DocumentNumber:    m.DocumentNumber,
		Counterparty:      m.Counterparty,
		LinkedDocuments:   nonNilStrings(m.LinkedDocuments),
		ChainID:           m.ChainID,
		ParentEventID:     m.ParentEventID,
		ActionSummary:     m.ActionSummary,
		Changes:           m.Changes,
		Metadata:          nonNilMap(m.Metadata),
		IsMaterial:        m.IsMaterial,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
