package services_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/cache"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/config"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/publisher"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/repositories/memory"
)

const testProfile = "profile-1"

// fixedNow sits inside the 2024 decision periods used across the tests.
var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type harness struct {
	store     *memory.Store
	recorder  *publisher.Recorder
	viewCache *cache.MemoryViewCache
	engine    *enforcement.Engine
	svc       *portssvc.ServiceContainer
}

func newHarness() *harness {
	h := &harness{
		store:     memory.NewStore(),
		recorder:  &publisher.Recorder{},
		viewCache: cache.NewMemoryViewCache(time.Minute),
		engine:    enforcement.NewEngine(func() time.Time { return fixedNow }),
	}
	cfg := &config.Config{ReconcileBatchLimit: 500, ChainNumberPrefix: "CH"}
	h.svc = services.NewServiceContainer(cfg, h.store.Provider(), services.Infrastructure{
		Publisher: h.recorder,
		ViewCache: h.viewCache,
		Engine:    h.engine,
	})
	return h
}

func draft(eventType domain.EventType) domain.EventDraft {
	return domain.EventDraft{
		ID:                uuid.NewString(),
		BusinessProfileID: testProfile,
		EventType:         eventType,
		OccurredAt:        time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		ActorID:           "user-1",
		EntityType:        "invoice",
		EntityID:          uuid.NewString(),
		DocumentType:      domain.DocumentTypeInvoice,
		DocumentID:        uuid.NewString(),
		DocumentNumber:    "FV/2024/06/001",
		ActionSummary:     "Invoice issued",
	}
}

func expenseDraft(amount int64) domain.EventDraft {
	d := draft(domain.EventExpensePosted)
	amt := decimal.NewFromInt(amount)
	pln := "PLN"
	d.Amount = &amt
	d.Currency = &pln
	d.Direction = domain.DirectionOutgoing
	d.EntityType = "expense"
	d.DocumentType = domain.DocumentTypeExpense
	d.DocumentNumber = "EXP/2024/06/001"
	d.ActionSummary = "Expense posted"
	return d
}

func budgetDecision(limit int64) domain.Decision {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	l := decimal.NewFromInt(limit)
	return domain.Decision{
		BusinessProfileID: testProfile,
		DecisionType:      domain.DecisionBudgetApproval,
		Title:             "Operating budget 2024",
		AuthorityLevel:    domain.AuthorityBoard,
		AllowsActions:     []domain.EventType{domain.EventExpensePosted},
		ExpenseLimit:      &l,
		TimePeriod:        &domain.TimePeriod{Start: &start, End: &end},
	}
}
