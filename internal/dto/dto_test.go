package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

func TestViewParams_ToViewFilter(t *testing.T) {
	p := ViewParams{
		BusinessProfileID: " p1 ",
		From:              "2024-01-01T00:00:00Z",
		EventTypes:        []string{"invoice_issued,invoice_paid", " expense_posted "},
		Limit:             25,
		NextToken:         "abc",
	}

	f, err := p.ToViewFilter()
	require.NoError(t, err)
	assert.Equal(t, "p1", f.BusinessProfileID)
	require.NotNil(t, f.From)
	assert.True(t, f.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, f.To)
	assert.Equal(t, []domain.EventType{domain.EventInvoiceIssued, domain.EventInvoicePaid, domain.EventExpensePosted}, f.EventTypes)
	assert.Equal(t, 25, f.Limit)
	require.NotNil(t, f.NextToken)
	assert.Equal(t, "abc", *f.NextToken)
}

func TestViewParams_BadTime(t *testing.T) {
	_, err := ViewParams{To: "31/12/2024"}.ToViewFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "to must be")
}

func TestViewParams_EmptyTokenIsNil(t *testing.T) {
	assert.Nil(t, ViewParams{}.Token())
}

func TestCreateDecisionRequest_Period(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := CreateDecisionRequest{PeriodStart: &start}.ToDecision()
	require.NotNil(t, d.TimePeriod)
	assert.Equal(t, &start, d.TimePeriod.Start)
	assert.Nil(t, d.TimePeriod.End)

	assert.Nil(t, CreateDecisionRequest{}.ToDecision().TimePeriod)
}

func TestCreateEventRequest_ActorComesFromCaller(t *testing.T) {
	draft := CreateEventRequest{BusinessProfileID: "p1", EventType: domain.EventInvoiceIssued}.ToEventDraft("user-7")
	assert.Equal(t, "user-7", draft.ActorID)
	assert.Equal(t, "p1", draft.BusinessProfileID)
}
