// Package publisher emits ledger notifications after successful writes.
package publisher

import (
	"context"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// Topic constants
const (
	TopicEventCreated       = "ledger.event.created"
	TopicEventUpdated       = "ledger.event.updated"
	TopicEventStatusChanged = "ledger.event.status_changed"
	TopicChainAttached      = "ledger.chain.attached"
)

type EventCreated struct {
	Event *domain.Event `json:"event"`
}

type EventUpdated struct {
	Event   *domain.Event  `json:"event"`
	Changes map[string]any `json:"changes"` // field name -> new value
}

type EventStatusChanged struct {
	Event *domain.Event      `json:"event"`
	From  domain.EventStatus `json:"from"`
	To    domain.EventStatus `json:"to"`
	By    string             `json:"by"`
}

type ChainAttached struct {
	EventID         string              `json:"event_id"`
	ChainID         string              `json:"chain_id"`
	Method          domain.AttachMethod `json:"method"`
	Confidence      float64             `json:"confidence"`
	CreatedNewChain bool                `json:"created_new_chain"`
}

// Publisher is the interface for emitting notifications.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
