package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is one row of the events table.
// Nullable columns are pointers; jsonb columns decode into maps.
type Event struct {
	ID                string           `db:"id"`
	BusinessProfileID string           `db:"business_profile_id"`
	EventType         string           `db:"event_type"`
	EventNumber       *string          `db:"event_number"`
	OccurredAt        time.Time        `db:"occurred_at"`
	RecordedAt        time.Time        `db:"recorded_at"`
	Amount            *decimal.Decimal `db:"amount"`
	Currency          *string          `db:"currency"`
	Direction         string           `db:"direction"`
	Posted            bool             `db:"posted"`
	NeedsAction       bool             `db:"needs_action"`
	Status            string           `db:"status"`
	DecisionID        *string          `db:"decision_id"`
	BlockedBy         *string          `db:"blocked_by"`
	BlockedReason     *string          `db:"blocked_reason"`
	Source            string           `db:"source"`
	Classification    *string          `db:"classification"`
	Category          *string          `db:"category"`
	VATRate           *decimal.Decimal `db:"vat_rate"`
	ActorID           string           `db:"actor_id"`
	ActorName         *string          `db:"actor_name"`
	ActorRole         *string          `db:"actor_role"`
	EntityType        string           `db:"entity_type"`
	EntityID          string           `db:"entity_id"`
	DocumentType      string           `db:"document_type"`
	DocumentID        string           `db:"document_id"`
	DocumentNumber    string           `db:"document_number"`
	Counterparty      *string          `db:"counterparty"`
	LinkedDocuments   []string         `db:"linked_documents"`
	ChainID           *string          `db:"chain_id"`
	ParentEventID     *string          `db:"parent_event_id"`
	ActionSummary     string           `db:"action_summary"`
	Changes           map[string]any   `db:"changes"`
	Metadata          map[string]any   `db:"metadata"`
	IsMaterial        bool             `db:"is_material"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}
