package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType is the closed set of business occurrences the ledger records.
type EventType string

const (
	EventInvoiceIssued       EventType = "invoice_issued"
	EventInvoiceReceived     EventType = "invoice_received"
	EventInvoicePaid         EventType = "invoice_paid"
	EventExpenseCaptured     EventType = "expense_captured"
	EventExpenseApproved     EventType = "expense_approved"
	EventExpensePosted       EventType = "expense_posted"
	EventPaymentReceived     EventType = "payment_received"
	EventPaymentSent         EventType = "payment_sent"
	EventBankTransaction     EventType = "bank_transaction"
	EventCashDocument        EventType = "cash_document"
	EventContractSigned      EventType = "contract_signed"
	EventEmployeeHired       EventType = "employee_hired"
	EventCapitalContribution EventType = "capital_contribution"
	EventCapitalWithdrawal   EventType = "capital_withdrawal"
	EventDividendDeclared    EventType = "dividend_declared"
	EventDecisionApproved    EventType = "decision_approved"
	EventDocumentUploaded    EventType = "document_uploaded"
	EventManualAdjustment    EventType = "manual_adjustment"
)

var allEventTypes = []EventType{
	EventInvoiceIssued,
	EventInvoiceReceived,
	EventInvoicePaid,
	EventExpenseCaptured,
	EventExpenseApproved,
	EventExpensePosted,
	EventPaymentReceived,
	EventPaymentSent,
	EventBankTransaction,
	EventCashDocument,
	EventContractSigned,
	EventEmployeeHired,
	EventCapitalContribution,
	EventCapitalWithdrawal,
	EventDividendDeclared,
	EventDecisionApproved,
	EventDocumentUploaded,
	EventManualAdjustment,
}

// AllEventTypes returns every known event type.
func AllEventTypes() []EventType {
	out := make([]EventType, len(allEventTypes))
	copy(out, allEventTypes)
	return out
}

// Valid reports whether t belongs to the closed set.
func (t EventType) Valid() bool {
	for _, known := range allEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Direction of money flow relative to the business profile.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionNeutral  Direction = "neutral"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing, DirectionNeutral:
		return true
	}
	return false
}

// EventSource identifies the capture source that produced an event.
type EventSource string

const (
	SourceManual           EventSource = "manual"
	SourceImport           EventSource = "import"
	SourceBankStatement    EventSource = "bank_statement"
	SourceContractGen      EventSource = "contract_generator"
	SourceInvoiceGen       EventSource = "invoice_generator"
	SourceDecisionWorkflow EventSource = "decision_workflow"
	SourceSystem           EventSource = "system"
)

// Valid reports whether s is a known capture source.
func (s EventSource) Valid() bool {
	switch s {
	case SourceManual, SourceImport, SourceBankStatement, SourceContractGen,
		SourceInvoiceGen, SourceDecisionWorkflow, SourceSystem:
		return true
	}
	return false
}

// Document types with dedicated views.
const (
	DocumentTypeInvoice = "invoice"
	DocumentTypeExpense = "expense"
)

// Metadata keys understood by the chain reconciler.
const (
	MetaObjectID       = "object_id"
	MetaInvoiceID      = "invoice_id"
	MetaCashDocumentID = "cash_document_id"
)

// Entity types chains can track through metadata references.
const (
	EntityTypeInvoice      = "invoice"
	EntityTypeCashDocument = "cash_document"
)

// Event is one business occurrence. OccurredAt is the economic date and drives
// the ledger; RecordedAt is the system entry time and drives the audit trail.
type Event struct {
	ID                string           `json:"id"`
	BusinessProfileID string           `json:"businessProfileID"`
	EventType         EventType        `json:"eventType"`
	EventNumber       *string          `json:"eventNumber,omitempty"`
	OccurredAt        time.Time        `json:"occurredAt"`
	RecordedAt        time.Time        `json:"recordedAt"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Currency          *string          `json:"currency,omitempty"`
	Direction         Direction        `json:"direction"`
	Posted            bool             `json:"posted"`
	NeedsAction       bool             `json:"needsAction"`
	Status            EventStatus      `json:"status"`

	DecisionID    *string `json:"decisionID,omitempty"`
	BlockedBy     *string `json:"blockedBy,omitempty"`
	BlockedReason *string `json:"blockedReason,omitempty"`

	Source         EventSource      `json:"source"`
	Classification *string          `json:"classification,omitempty"`
	Category       *string          `json:"category,omitempty"`
	VATRate        *decimal.Decimal `json:"vatRate,omitempty"`

	ActorID         string   `json:"actorID"`
	ActorName       *string  `json:"actorName,omitempty"`
	ActorRole       *string  `json:"actorRole,omitempty"`
	EntityType      string   `json:"entityType"`
	EntityID        string   `json:"entityID"`
	DocumentType    string   `json:"documentType"`
	DocumentID      string   `json:"documentID"`
	DocumentNumber  string   `json:"documentNumber"`
	Counterparty    *string  `json:"counterparty,omitempty"`
	LinkedDocuments []string `json:"linkedDocuments"`

	ChainID       *string `json:"chainID,omitempty"`
	ParentEventID *string `json:"parentEventID,omitempty"`

	ActionSummary string         `json:"actionSummary"`
	Changes       map[string]any `json:"changes,omitempty"`
	Metadata      map[string]any `json:"metadata"`
	IsMaterial    bool           `json:"isMaterial"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// IsOrphaned reports whether the event has no causal chain.
func (e *Event) IsOrphaned() bool {
	return e.ChainID == nil
}

// NormalizeRef maps an empty reference to nil so that stores keep a single
// representation of "not set" for chain and parent ids.
func NormalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}

// IsBlocked reports whether an authority block is recorded on the event.
func (e *Event) IsBlocked() bool {
	return e.BlockedBy != nil && *e.BlockedBy != ""
}

// MetadataString returns a non-empty string metadata value.
func (e *Event) MetadataString(key string) (string, bool) {
	if e.Metadata == nil {
		return "", false
	}
	v, ok := e.Metadata[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// EventDraft is what a capture source supplies to create an event.
// ID and RecordedAt are assigned by the store when absent.
type EventDraft struct {
	ID                string           `validate:"omitempty,uuid"`
	BusinessProfileID string           `validate:"required"`
	EventType         EventType        `validate:"required"`
	EventNumber       *string          `validate:"-"`
	OccurredAt        time.Time        `validate:"required"`
	RecordedAt        *time.Time       `validate:"-"`
	Amount            *decimal.Decimal `validate:"-"`
	Currency          *string          `validate:"omitempty,iso4217"`
	Direction         Direction        `validate:"-"`
	Source            EventSource      `validate:"-"`
	Classification    *string          `validate:"-"`
	Category          *string          `validate:"-"`
	VATRate           *decimal.Decimal `validate:"-"`
	ActorID           string           `validate:"required"`
	ActorName         *string          `validate:"-"`
	ActorRole         *string          `validate:"-"`
	EntityType        string           `validate:"required"`
	EntityID          string           `validate:"required"`
	DocumentType      string           `validate:"required"`
	DocumentID        string           `validate:"required"`
	DocumentNumber    string           `validate:"required"`
	Counterparty      *string          `validate:"-"`
	LinkedDocuments   []string         `validate:"-"`
	ParentEventID     *string          `validate:"-"`
	ActionSummary     string           `validate:"required"`
	Changes           map[string]any   `validate:"-"`
	Metadata          map[string]any   `validate:"-"`
	IsMaterial        bool             `validate:"-"`
}

// EventPatch holds the optional fields of an update. Nil means "leave as is".
type EventPatch struct {
	// classification fields, free before posting
	Classification *string
	Category       *string
	VATRate        *decimal.Decimal
	Counterparty   *string

	// financial and identity fields, frozen once posted
	Amount         *decimal.Decimal
	Currency       *string
	Direction      *Direction
	OccurredAt     *time.Time
	EntityType     *string
	EntityID       *string
	DocumentType   *string
	DocumentID     *string
	DocumentNumber *string

	// always writable
	NeedsAction *bool
	Metadata    map[string]any

	ActionSummary   *string
	IsMaterial      *bool
	LinkedDocuments []string
}

// TouchesFrozenFields reports whether the patch changes anything a posted event may not change.
func (p EventPatch) TouchesFrozenFields() bool {
	return p.Classification != nil || p.Category != nil || p.VATRate != nil || p.Counterparty != nil ||
		p.Amount != nil || p.Currency != nil || p.Direction != nil || p.OccurredAt != nil ||
		p.EntityType != nil || p.EntityID != nil ||
		p.DocumentType != nil || p.DocumentID != nil || p.DocumentNumber != nil ||
		p.ActionSummary != nil || p.IsMaterial != nil || p.LinkedDocuments != nil
}

// IsEmpty reports whether the patch changes nothing.
func (p EventPatch) IsEmpty() bool {
	return !p.TouchesFrozenFields() && p.NeedsAction == nil && p.Metadata == nil
}

// Apply writes the patch onto e and returns the names of changed fields.
func (p EventPatch) Apply(e *Event) map[string]any {
	changes := map[string]any{}
	set := func(name string, v any) { changes[name] = v }

	if p.Classification != nil {
		e.Classification = p.Classification
		set("classification", *p.Classification)
	}
	if p.Category != nil {
		e.Category = p.Category
		set("category", *p.Category)
	}
	if p.VATRate != nil {
		e.VATRate = p.VATRate
		set("vat_rate", p.VATRate.String())
	}
	if p.Counterparty != nil {
		e.Counterparty = p.Counterparty
		set("counterparty", *p.Counterparty)
	}
	if p.Amount != nil {
		e.Amount = p.Amount
		set("amount", p.Amount.String())
	}
	if p.Currency != nil {
		e.Currency = p.Currency
		set("currency", *p.Currency)
	}
	if p.Direction != nil {
		e.Direction = *p.Direction
		set("direction", string(*p.Direction))
	}
	if p.OccurredAt != nil {
		e.OccurredAt = *p.OccurredAt
		set("occurred_at", p.OccurredAt.Format(time.RFC3339))
	}
	if p.EntityType != nil {
		e.EntityType = *p.EntityType
		set("entity_type", *p.EntityType)
	}
	if p.EntityID != nil {
		e.EntityID = *p.EntityID
		set("entity_id", *p.EntityID)
	}
	if p.DocumentType != nil {
		e.DocumentType = *p.DocumentType
		set("document_type", *p.DocumentType)
	}
	if p.DocumentID != nil {
		e.DocumentID = *p.DocumentID
		set("document_id", *p.DocumentID)
	}
	if p.DocumentNumber != nil {
		e.DocumentNumber = *p.DocumentNumber
		set("document_number", *p.DocumentNumber)
	}
	if p.ActionSummary != nil {
		e.ActionSummary = *p.ActionSummary
		set("action_summary", *p.ActionSummary)
	}
	if p.IsMaterial != nil {
		e.IsMaterial = *p.IsMaterial
		set("is_material", *p.IsMaterial)
	}
	if p.LinkedDocuments != nil {
		e.LinkedDocuments = append([]string(nil), p.LinkedDocuments...)
		set("linked_documents", e.LinkedDocuments)
	}
	if p.NeedsAction != nil {
		e.NeedsAction = *p.NeedsAction
		set("needs_action", *p.NeedsAction)
	}
	if p.Metadata != nil {
		if e.Metadata == nil {
			e.Metadata = map[string]any{}
		}
		for k, v := range p.Metadata {
			e.Metadata[k] = v
		}
		set("metadata", p.Metadata)
	}
	return changes
}
