package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func queryFixture() []domain.Event {
	acme, globex := "ACME Sp. z o.o.", "Globex"
	chain := "ch-1"
	return []domain.Event{
		{ID: "a", BusinessProfileID: "p1", EventType: domain.EventInvoiceIssued, DocumentType: domain.DocumentTypeInvoice, Posted: true, OccurredAt: day(5), RecordedAt: day(6), Counterparty: &acme, ActorID: "u1", ChainID: &chain},
		{ID: "b", BusinessProfileID: "p1", EventType: domain.EventExpensePosted, DocumentType: domain.DocumentTypeExpense, Posted: true, OccurredAt: day(5), RecordedAt: day(2), Counterparty: &globex, ActorID: "u2"},
		{ID: "c", BusinessProfileID: "p1", EventType: domain.EventExpenseCaptured, DocumentType: domain.DocumentTypeExpense, NeedsAction: true, OccurredAt: day(1), RecordedAt: day(9), ActorID: "u1"},
		{ID: "d", BusinessProfileID: "p2", EventType: domain.EventInvoiceIssued, DocumentType: domain.DocumentTypeInvoice, Posted: true, OccurredAt: day(7), RecordedAt: day(7)},
		{ID: "e", BusinessProfileID: "p1", EventType: domain.EventInvoicePaid, DocumentType: domain.DocumentTypeInvoice, Posted: true, OccurredAt: day(8), RecordedAt: day(8), Counterparty: &acme},
	}
}

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestEventQuery_LedgerOrdering(t *testing.T) {
	q := domain.EventQuery{BusinessProfileID: "p1", Posted: domain.BoolPtr(true), Sort: domain.SortOccurredDesc}
	// b and a share occurred_at; id descending breaks the tie
	assert.Equal(t, []string{"e", "b", "a"}, ids(q.Apply(queryFixture())))
}

func TestEventQuery_Filters(t *testing.T) {
	from, to := day(5), day(7)
	tests := []struct {
		name  string
		query domain.EventQuery
		want  []string
	}{
		{"counterparty substring case-insensitive", domain.EventQuery{BusinessProfileID: "p1", Counterparty: "acme"}, []string{"e", "a"}},
		{"event types", domain.EventQuery{BusinessProfileID: "p1", EventTypes: []domain.EventType{domain.EventExpensePosted, domain.EventExpenseCaptured}}, []string{"b", "c"}},
		{"document types", domain.EventQuery{DocumentTypes: []string{domain.DocumentTypeInvoice}}, []string{"e", "d", "a"}},
		{"occurred range inclusive", domain.EventQuery{BusinessProfileID: "p1", OccurredFrom: &from, OccurredTo: &to}, []string{"b", "a"}},
		{"actor", domain.EventQuery{BusinessProfileID: "p1", ActorID: "u1"}, []string{"a", "c"}},
		{"orphans", domain.EventQuery{BusinessProfileID: "p1", Orphaned: domain.BoolPtr(true)}, []string{"e", "b", "c"}},
		{"chain", domain.EventQuery{ChainID: "ch-1"}, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.query.Apply(queryFixture())))
		})
	}
}

func TestEventQuery_RecordedOrdering(t *testing.T) {
	q := domain.EventQuery{BusinessProfileID: "p1", Sort: domain.SortRecordedDesc}
	assert.Equal(t, []string{"c", "e", "a", "b"}, ids(q.Apply(queryFixture())))
}

func TestEventQuery_CursorPaging(t *testing.T) {
	q := domain.EventQuery{BusinessProfileID: "p1", Posted: domain.BoolPtr(true), Sort: domain.SortOccurredDesc, Limit: 2}
	first := q.Apply(queryFixture())
	require.Equal(t, []string{"e", "b"}, ids(first))

	cursor := q.CursorFor(&first[len(first)-1])
	q.After = &cursor
	assert.Equal(t, []string{"a"}, ids(q.Apply(queryFixture())))
}

func TestEventQuery_ChainHistoryAscending(t *testing.T) {
	q := domain.EventQuery{BusinessProfileID: "p1", Sort: domain.SortOccurredAsc}
	assert.Equal(t, []string{"c", "a", "b", "e"}, ids(q.Apply(queryFixture())))
}
