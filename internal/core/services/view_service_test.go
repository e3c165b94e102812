package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/suite"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

func storedEvent(i int, posted, needsAction bool) domain.Event {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour)
	status := domain.StatusCaptured
	if posted {
		status = domain.StatusPosted
	}
	return domain.Event{
		ID:                fmt.Sprintf("evt-%03d", i),
		BusinessProfileID: testProfile,
		EventType:         domain.EventInvoiceIssued,
		OccurredAt:        at,
		RecordedAt:        at.Add(time.Minute),
		Status:            status,
		Posted:            posted,
		NeedsAction:       needsAction,
		Direction:         domain.DirectionIncoming,
		Source:            domain.SourceImport,
		ActorID:           "user-1",
		EntityType:        "invoice",
		EntityID:          fmt.Sprintf("inv-%03d", i),
		DocumentType:      domain.DocumentTypeInvoice,
		DocumentID:        fmt.Sprintf("doc-%03d", i),
		DocumentNumber:    fmt.Sprintf("FV/%03d", i),
		ActionSummary:     "imported",
		Metadata:          map[string]any{},
	}
}

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

type ViewServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	h   *harness
}

func (suite *ViewServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.h = newHarness()
}

func (suite *ViewServiceTestSuite) seed(events ...domain.Event) {
	for _, e := range events {
		_, err := suite.h.store.SaveEvent(suite.ctx, e)
		suite.Require().NoError(err)
	}
}

func (suite *ViewServiceTestSuite) TestLedgerView_PaginatesWithoutGapsOrDuplicates() {
	for i := 0; i < 7; i++ {
		suite.seed(storedEvent(i, true, false))
	}

	var seen []string
	var token *string
	pages := 0
	for {
		page, err := suite.h.svc.View.LedgerView(suite.ctx, domain.ViewFilter{
			BusinessProfileID: testProfile,
			Limit:             3,
			NextToken:         token,
		})
		suite.Require().NoError(err)
		pages++
		seen = append(seen, ids(page.Events)...)
		if page.NextToken == nil {
			break
		}
		token = page.NextToken
	}

	suite.Equal(3, pages)
	suite.Equal([]string{"evt-006", "evt-005", "evt-004", "evt-003", "evt-002", "evt-001", "evt-000"}, seen)
}

func (suite *ViewServiceTestSuite) TestLedgerView_ExactPageHasNoToken() {
	for i := 0; i < 3; i++ {
		suite.seed(storedEvent(i, true, false))
	}

	page, err := suite.h.svc.View.LedgerView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile, Limit: 3})

	suite.Require().NoError(err)
	suite.Len(page.Events, 3)
	suite.Nil(page.NextToken)
}

func (suite *ViewServiceTestSuite) TestLedgerView_RejectsBadToken() {
	bad := "not a token"
	_, err := suite.h.svc.View.LedgerView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile, NextToken: &bad})
	suite.ErrorIs(err, apperrors.ErrValidation)

	for i := 0; i < 3; i++ {
		suite.seed(storedEvent(i, false, true))
	}
	audit, err := suite.h.svc.View.AuditView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile, Limit: 1})
	suite.Require().NoError(err)
	suite.Require().NotNil(audit.NextToken)

	_, err = suite.h.svc.View.LedgerView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile, NextToken: audit.NextToken})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ViewServiceTestSuite) TestViews_RequireProfile() {
	_, err := suite.h.svc.View.LedgerView(suite.ctx, domain.ViewFilter{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.h.svc.View.InboxView(suite.ctx, "", 10, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ViewServiceTestSuite) TestDocumentViews_FilterByDocumentType() {
	invoice := storedEvent(1, true, false)
	expense := storedEvent(2, true, false)
	expense.DocumentType = domain.DocumentTypeExpense
	suite.seed(invoice, expense)

	invoices, err := suite.h.svc.View.InvoiceView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile})
	suite.Require().NoError(err)
	suite.Equal([]string{invoice.ID}, ids(invoices.Events))

	expenses, err := suite.h.svc.View.ExpenseView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile})
	suite.Require().NoError(err)
	suite.Equal([]string{expense.ID}, ids(expenses.Events))
}

func (suite *ViewServiceTestSuite) TestAuditView_FiltersOnRecordedAt() {
	early := storedEvent(1, false, true)
	late := storedEvent(2, true, false)
	// economic date says "early", entry time says "late"
	late.OccurredAt = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	late.RecordedAt = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.seed(early, late)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	page, err := suite.h.svc.View.AuditView(suite.ctx, domain.ViewFilter{BusinessProfileID: testProfile, From: &from})

	suite.Require().NoError(err)
	suite.Equal([]string{late.ID}, ids(page.Events))
}

func (suite *ViewServiceTestSuite) TestOrphanView_ListsEventsWithoutChain() {
	suite.seed(storedEvent(1, false, true), storedEvent(2, true, false))
	_, err := suite.h.svc.Reconciler.AutoAttachEvent(suite.ctx, "evt-001")
	suite.Require().NoError(err)

	page, err := suite.h.svc.View.OrphanView(suite.ctx, testProfile, 0, nil)

	suite.Require().NoError(err)
	suite.Equal([]string{"evt-002"}, ids(page.Events))
}

func (suite *ViewServiceTestSuite) TestLedgerView_CacheInvalidatedByWrites() {
	suite.seed(storedEvent(1, true, false), storedEvent(2, true, false))
	filter := domain.ViewFilter{BusinessProfileID: testProfile}

	page, err := suite.h.svc.View.LedgerView(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Len(page.Events, 2)
	suite.Equal(1, suite.h.viewCache.Len())

	// written behind the services' back: the cached page is still served
	suite.seed(storedEvent(3, true, false))
	page, err = suite.h.svc.View.LedgerView(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Len(page.Events, 2)

	// any service write moves the profile to a fresh generation
	created, err := suite.h.svc.Event.CreateEvent(suite.ctx, draft(domain.EventInvoiceIssued))
	suite.Require().NoError(err)
	suite.False(created.Posted)

	page, err = suite.h.svc.View.LedgerView(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Len(page.Events, 3)
}

func TestViewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ViewServiceTestSuite))
}

// TestViewMembership checks that every event lands in exactly the views its flags select.
// Property: ledger == {posted}, inbox == {!posted && needs_action}
func TestViewMembership(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("ledger and inbox membership follow posted and needs_action", prop.ForAll(
		func(flags []int) bool {
			ctx := context.Background()
			h := newHarness()
			wantLedger := map[string]bool{}
			wantInbox := map[string]bool{}
			for i, f := range flags {
				posted, needsAction := f&1 == 1, f&2 == 2
				e := storedEvent(i, posted, needsAction)
				if _, err := h.store.SaveEvent(ctx, e); err != nil {
					return false
				}
				if posted {
					wantLedger[e.ID] = true
				}
				if !posted && needsAction {
					wantInbox[e.ID] = true
				}
			}

			ledger, err := h.svc.View.LedgerView(ctx, domain.ViewFilter{BusinessProfileID: testProfile, Limit: 500})
			if err != nil {
				return false
			}
			inbox, err := h.svc.View.InboxView(ctx, testProfile, 500, nil)
			if err != nil {
				return false
			}
			return sameSet(ids(ledger.Events), wantLedger) && sameSet(ids(inbox.Events), wantInbox)
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}

func sameSet(got []string, want map[string]bool) bool {
	if len(got) != len(want) {
		return false
	}
	for _, id := range got {
		if !want[id] {
			return false
		}
	}
	return true
}
