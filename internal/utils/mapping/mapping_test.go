package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/models"
)

func TestEventModelRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("1234.50")
	chain := "c1"
	e := domain.Event{
		ID:                "e1",
		BusinessProfileID: "p1",
		EventType:         domain.EventInvoiceIssued,
		OccurredAt:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:            &amount,
		Direction:         domain.DirectionIncoming,
		Status:            domain.StatusPosted,
		Posted:            true,
		ChainID:           &chain,
	}

	m := ToModelEvent(e)
	assert.NotNil(t, m.LinkedDocuments)
	assert.NotNil(t, m.Metadata)

	back := ToDomainEvent(m)
	assert.Equal(t, e.ID, back.ID)
	assert.True(t, amount.Equal(*back.Amount))
	assert.Equal(t, domain.StatusPosted, back.Status)
	assert.Equal(t, "c1", *back.ChainID)
}

func TestEventModelEmptyRefsBecomeNull(t *testing.T) {
	empty := ""
	m := ToModelEvent(domain.Event{ID: "e1", ChainID: &empty, ParentEventID: &empty})
	assert.Nil(t, m.ChainID)
	assert.Nil(t, m.ParentEventID)

	back := ToDomainEvent(m)
	assert.True(t, back.IsOrphaned())
}

func TestDecisionModelFlattensPeriod(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := domain.Decision{
		DecisionID:    "d1",
		AllowsActions: []domain.EventType{domain.EventExpensePosted},
		TimePeriod:    &domain.TimePeriod{Start: &start},
	}

	m := ToModelDecision(d)
	assert.Equal(t, []string{"expense_posted"}, m.AllowsActions)
	assert.Equal(t, &start, m.PeriodStart)
	assert.Nil(t, m.PeriodEnd)

	back := ToDomainDecision(m)
	require.NotNil(t, back.TimePeriod)
	assert.Equal(t, start, *back.TimePeriod.Start)

	assert.Nil(t, ToDomainDecision(models.Decision{DecisionID: "d2"}).TimePeriod)
}

func TestChainMappingNormalizesTimes(t *testing.T) {
	warsaw := time.FixedZone("CEST", 2*60*60)
	obj := "obj-1"
	c := ToDomainChain(models.Chain{
		ChainID:        "c1",
		State:          "open",
		ObjectID:       &obj,
		EventCount:     3,
		LastActivityAt: time.Date(2024, 6, 1, 12, 0, 0, 0, warsaw),
		CreatedAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, warsaw),
	})
	assert.Equal(t, domain.ChainOpen, c.State)
	assert.Equal(t, time.UTC, c.LastActivityAt.Location())
	assert.Equal(t, 10, c.LastActivityAt.Hour())
	assert.Equal(t, "obj-1", *c.ObjectID)
	assert.Equal(t, 3, c.EventCount)
}
