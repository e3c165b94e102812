package enforcement_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func budgetDecision(limit int64) domain.Decision {
	start, end := date(2024, 1, 1), date(2024, 12, 31)
	return domain.Decision{
		DecisionID:     "dec-budget",
		DecisionType:   domain.DecisionBudgetApproval,
		AuthorityLevel: domain.AuthorityBoard,
		AllowsActions:  []domain.EventType{domain.EventExpensePosted},
		ExpenseLimit:   decimalPtr(decimal.NewFromInt(limit)),
		TimePeriod:     &domain.TimePeriod{Start: &start, End: &end},
		IsActive:       true,
	}
}

func expenseEvent(amount int64, occurred time.Time) *domain.Event {
	return &domain.Event{
		ID:         "evt-1",
		EventType:  domain.EventExpensePosted,
		Amount:     decimalPtr(decimal.NewFromInt(amount)),
		OccurredAt: occurred,
		Status:     domain.StatusApproved,
	}
}

func TestDecisionRequirementsCoverEveryEventType(t *testing.T) {
	// every event type must be classified, even if it needs no decision
	for _, et := range domain.AllEventTypes() {
		assert.Contains(t, enforcement.KnownEventTypes(), et, "event type %s has no enforcement rule", et)
	}
}

func TestRequiredDecisionType(t *testing.T) {
	tests := []struct {
		eventType domain.EventType
		want      domain.DecisionType
		required  bool
	}{
		{domain.EventExpenseApproved, domain.DecisionBudgetApproval, true},
		{domain.EventExpensePosted, domain.DecisionBudgetApproval, true},
		{domain.EventContractSigned, domain.DecisionContractAuthority, true},
		{domain.EventEmployeeHired, domain.DecisionHiringAuthority, true},
		{domain.EventCapitalContribution, domain.DecisionCapitalEvent, true},
		{domain.EventCapitalWithdrawal, domain.DecisionCapitalEvent, true},
		{domain.EventDividendDeclared, domain.DecisionCapitalEvent, true},
		{domain.EventInvoiceIssued, "", false},
		{domain.EventType("bogus"), "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			got, ok := enforcement.RequiredDecisionType(tt.eventType)
			assert.Equal(t, tt.required, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanProgressStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.EventStatus
		target  domain.EventStatus
		blocked bool
		allowed bool
		code    domain.CheckCode
	}{
		{"captured to classified", domain.StatusCaptured, domain.StatusClassified, false, true, domain.CheckOK},
		{"classified to approved", domain.StatusClassified, domain.StatusApproved, false, true, domain.CheckOK},
		{"approved to posted", domain.StatusApproved, domain.StatusPosted, false, true, domain.CheckOK},
		{"posted to settled", domain.StatusPosted, domain.StatusSettled, false, true, domain.CheckOK},
		{"skip a step", domain.StatusCaptured, domain.StatusApproved, false, false, domain.CheckNotSuccessor},
		{"backward", domain.StatusPosted, domain.StatusApproved, false, false, domain.CheckNotSuccessor},
		{"same status", domain.StatusClassified, domain.StatusClassified, false, false, domain.CheckNotSuccessor},
		{"terminal", domain.StatusSettled, domain.StatusSettled, false, false, domain.CheckTerminalStatus},
		{"blocked", domain.StatusCaptured, domain.StatusClassified, true, false, domain.CheckEventBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &domain.Event{Status: tt.from}
			if tt.blocked {
				e.BlockedBy = stringPtr("dec-1")
				e.BlockedReason = stringPtr("awaiting board")
			}
			check := enforcement.CanProgressStatus(e, tt.target)
			assert.Equal(t, tt.allowed, check.IsAllowed)
			assert.Equal(t, tt.code, check.Code)
			if !tt.allowed {
				assert.NotEmpty(t, check.ErrorMessage)
			}
		})
	}
}

func TestCanProgressStatus_OnlyImmediateSuccessor(t *testing.T) {
	statuses := domain.AllStatuses()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("only the immediate successor is allowed", prop.ForAll(
		func(fromIdx, toIdx int) bool {
			from, target := statuses[fromIdx], statuses[toIdx]
			check := enforcement.CanProgressStatus(&domain.Event{Status: from}, target)
			next, ok := from.Next()
			return check.IsAllowed == (ok && next == target)
		},
		gen.IntRange(0, len(statuses)-1),
		gen.IntRange(0, len(statuses)-1),
	))

	properties.TestingRun(t)
}

func TestCanPostEvent_ExpenseLimit(t *testing.T) {
	now := date(2024, 6, 15)
	d := domain.Decision{
		DecisionID:     "dec-1",
		DecisionType:   domain.DecisionBudgetApproval,
		AuthorityLevel: domain.AuthorityManager,
		AllowsActions:  []domain.EventType{domain.EventExpensePosted},
		ExpenseLimit:   decimalPtr(decimal.NewFromInt(1000)),
		IsActive:       true,
	}

	over := enforcement.CanPostEvent(expenseEvent(1500, now), []domain.Decision{d}, now)
	assert.False(t, over.IsAllowed)
	assert.Equal(t, domain.CheckExpenseLimitExceeded, over.Code)
	assert.Contains(t, over.ErrorMessage, "limit")
	assert.Equal(t, "dec-1", over.BlockedBy)

	under := enforcement.CanPostEvent(expenseEvent(900, now), []domain.Decision{d}, now)
	assert.True(t, under.IsAllowed)
	assert.Equal(t, "dec-1", under.DecisionID)
}

func TestCanPostEvent_EndToEnd(t *testing.T) {
	now := date(2024, 7, 1)
	decisions := []domain.Decision{budgetDecision(5000)}

	ok := enforcement.CanPostEvent(expenseEvent(4000, date(2024, 6, 1)), decisions, now)
	assert.True(t, ok.IsAllowed)

	blocked := enforcement.CanPostEvent(expenseEvent(6000, date(2024, 6, 1)), decisions, now)
	assert.False(t, blocked.IsAllowed)
	assert.Equal(t, domain.CheckExpenseLimitExceeded, blocked.Code)
}

func TestCanPostEvent_Rules(t *testing.T) {
	now := date(2024, 7, 1)
	inactive := budgetDecision(5000)
	inactive.IsActive = false
	otherAction := budgetDecision(5000)
	otherAction.AllowsActions = []domain.EventType{domain.EventExpenseApproved}
	expired := budgetDecision(5000)
	end := date(2024, 3, 31)
	expired.TimePeriod = &domain.TimePeriod{End: &end}

	tests := []struct {
		name      string
		event     *domain.Event
		decisions []domain.Decision
		allowed   bool
		code      domain.CheckCode
		required  domain.DecisionType
	}{
		{
			name:    "no decision required",
			event:   &domain.Event{EventType: domain.EventInvoiceIssued, OccurredAt: now},
			allowed: true,
		},
		{
			name:     "no decision registered",
			event:    expenseEvent(100, date(2024, 6, 1)),
			allowed:  false,
			code:     domain.CheckDecisionMissing,
			required: domain.DecisionBudgetApproval,
		},
		{
			name:      "inactive decision ignored",
			event:     expenseEvent(100, date(2024, 6, 1)),
			decisions: []domain.Decision{inactive},
			allowed:   false,
			code:      domain.CheckDecisionMissing,
			required:  domain.DecisionBudgetApproval,
		},
		{
			name:      "decision window judged at evaluation time",
			event:     expenseEvent(100, date(2024, 2, 1)),
			decisions: []domain.Decision{expired},
			allowed:   false,
			code:      domain.CheckDecisionMissing,
			required:  domain.DecisionBudgetApproval,
		},
		{
			name:      "action not allowed",
			event:     expenseEvent(100, date(2024, 6, 1)),
			decisions: []domain.Decision{otherAction},
			allowed:   false,
			code:      domain.CheckActionNotAllowed,
			required:  domain.DecisionBudgetApproval,
		},
		{
			name:      "occurred outside period",
			event:     expenseEvent(100, date(2023, 12, 31)),
			decisions: []domain.Decision{budgetDecision(5000)},
			allowed:   false,
			code:      domain.CheckOutsidePeriod,
			required:  domain.DecisionBudgetApproval,
		},
		{
			name:      "amount equal to limit",
			event:     expenseEvent(5000, date(2024, 6, 1)),
			decisions: []domain.Decision{budgetDecision(5000)},
			allowed:   true,
			required:  domain.DecisionBudgetApproval,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := enforcement.CanPostEvent(tt.event, tt.decisions, now)
			assert.Equal(t, tt.allowed, check.IsAllowed)
			assert.Equal(t, tt.code, check.Code)
			assert.Equal(t, tt.required, check.RequiredDecision)
		})
	}
}

func TestCanPostEvent_Idempotent(t *testing.T) {
	now := date(2024, 7, 1)
	decisions := []domain.Decision{budgetDecision(5000)}
	e := expenseEvent(6000, date(2024, 6, 1))

	first := enforcement.CanPostEvent(e, decisions, now)
	second := enforcement.CanPostEvent(e, decisions, now)
	assert.Equal(t, first, second)
}

func TestFindApplicableDecision_FirstMatchWins(t *testing.T) {
	now := date(2024, 7, 1)
	a := budgetDecision(100)
	a.DecisionID = "a"
	b := budgetDecision(200)
	b.DecisionID = "b"
	hiring := domain.Decision{DecisionID: "h", DecisionType: domain.DecisionHiringAuthority, IsActive: true}

	got := enforcement.FindApplicableDecision(expenseEvent(1, now), []domain.Decision{hiring, a, b}, domain.DecisionBudgetApproval, now)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.DecisionID)
}

func TestCanUserApprove(t *testing.T) {
	now := date(2024, 7, 1)
	decisions := []domain.Decision{budgetDecision(5000)} // board authority
	e := expenseEvent(100, date(2024, 6, 1))

	tests := []struct {
		role    domain.AuthorityLevel
		allowed bool
		code    domain.CheckCode
	}{
		{domain.AuthorityShareholder, true, domain.CheckOK},
		{domain.AuthorityBoard, true, domain.CheckOK},
		{domain.AuthorityManager, false, domain.CheckInsufficientRole},
		{domain.AuthorityEmployee, false, domain.CheckInsufficientRole},
		{domain.AuthorityLevel("intern"), false, domain.CheckUnknownRole},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			check := enforcement.CanUserApprove(e, tt.role, decisions, now)
			assert.Equal(t, tt.allowed, check.IsAllowed)
			assert.Equal(t, tt.code, check.Code)
		})
	}

	noDecision := enforcement.CanUserApprove(e, domain.AuthorityShareholder, nil, now)
	assert.False(t, noDecision.IsAllowed)
	assert.Equal(t, domain.CheckDecisionMissing, noDecision.Code)

	free := enforcement.CanUserApprove(&domain.Event{EventType: domain.EventInvoiceIssued}, domain.AuthorityEmployee, nil, now)
	assert.True(t, free.IsAllowed)
}

func TestEngine_UsesClock(t *testing.T) {
	engine := enforcement.NewEngine(func() time.Time { return date(2025, 6, 1) })
	// the 2024 decision has expired by the engine's clock
	check := engine.CanPostEvent(expenseEvent(100, date(2024, 6, 1)), []domain.Decision{budgetDecision(5000)})
	assert.False(t, check.IsAllowed)
	assert.Equal(t, domain.CheckDecisionMissing, check.Code)
}
