// Package enforcement decides whether a status advance or a posting is currently
// permitted. Every function is pure: the same inputs, including the evaluation
// time, always yield the same Check.
package enforcement

import (
	"fmt"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// decisionRequirements maps every event type to the decision type gating its posting.
// An empty value means no decision is required. Every domain.EventType must appear here;
// see TestDecisionRequirementsCoverEveryEventType.
var decisionRequirements = map[domain.EventType]domain.DecisionType{
	domain.EventInvoiceIssued:       "",
	domain.EventInvoiceReceived:     "",
	domain.EventInvoicePaid:         "",
	domain.EventExpenseCaptured:     "",
	domain.EventExpenseApproved:     domain.DecisionBudgetApproval,
	domain.EventExpensePosted:       domain.DecisionBudgetApproval,
	domain.EventPaymentReceived:     "",
	domain.EventPaymentSent:         "",
	domain.EventBankTransaction:     "",
	domain.EventCashDocument:        "",
	domain.EventContractSigned:      domain.DecisionContractAuthority,
	domain.EventEmployeeHired:       domain.DecisionHiringAuthority,
	domain.EventCapitalContribution: domain.DecisionCapitalEvent,
	domain.EventCapitalWithdrawal:   domain.DecisionCapitalEvent,
	domain.EventDividendDeclared:    domain.DecisionCapitalEvent,
	domain.EventDecisionApproved:    "",
	domain.EventDocumentUploaded:    "",
	domain.EventManualAdjustment:    "",
}

// RequiredDecisionType returns the decision type gating eventType, if any.
func RequiredDecisionType(eventType domain.EventType) (domain.DecisionType, bool) {
	dt, ok := decisionRequirements[eventType]
	if !ok || dt == "" {
		return "", false
	}
	return dt, true
}

// CanProgressStatus allows only the single forward step from event.Status, and
// only while the event carries no block.
func CanProgressStatus(event *domain.Event, target domain.EventStatus) domain.Check {
	next, ok := event.Status.Next()
	if !ok {
		return domain.Denied(domain.CheckTerminalStatus,
			fmt.Sprintf("status %q is terminal", event.Status))
	}
	if target != next {
		return domain.Denied(domain.CheckNotSuccessor,
			fmt.Sprintf("cannot move from %q to %q: next status is %q", event.Status, target, next))
	}
	if event.IsBlocked() {
		check := domain.Denied(domain.CheckEventBlocked, blockedMessage(event))
		check.BlockedBy = *event.BlockedBy
		return check
	}
	return domain.Allowed()
}

// FindApplicableDecision returns the first active decision of type dt whose time
// period, if present, contains now.
//
// The window is checked against the evaluation time, not event.OccurredAt.
// Back-dated events can therefore match a decision that was not in force on their
// economic date; CanPostEvent re-checks OccurredAt separately.
func FindApplicableDecision(event *domain.Event, decisions []domain.Decision, dt domain.DecisionType, now time.Time) *domain.Decision {
	for i := range decisions {
		d := &decisions[i]
		if !d.IsActive || d.DecisionType != dt {
			continue
		}
		if d.BusinessProfileID != "" && event.BusinessProfileID != "" && d.BusinessProfileID != event.BusinessProfileID {
			continue
		}
		if !d.ActiveAt(now) {
			continue
		}
		return d
	}
	return nil
}

// CanPostEvent evaluates the posting rules in order: no decision required,
// no applicable decision, action not covered, expense limit, economic date outside
// the decision period.
func CanPostEvent(event *domain.Event, decisions []domain.Decision, now time.Time) domain.Check {
	dt, required := RequiredDecisionType(event.EventType)
	if !required {
		return domain.Allowed()
	}

	decision := FindApplicableDecision(event, decisions, dt, now)
	if decision == nil {
		check := domain.Denied(domain.CheckDecisionMissing,
			fmt.Sprintf("posting %s requires an active %s decision", event.EventType, dt))
		check.BlockedBy = string(dt)
		check.RequiredDecision = dt
		return check
	}

	deny := func(code domain.CheckCode, msg string) domain.Check {
		check := domain.Denied(code, msg)
		check.BlockedBy = decision.DecisionID
		check.RequiredDecision = dt
		check.DecisionID = decision.DecisionID
		return check
	}

	if !decision.Allows(event.EventType) {
		return deny(domain.CheckActionNotAllowed,
			fmt.Sprintf("decision %s does not allow %s", decision.DecisionID, event.EventType))
	}
	if decision.ExpenseLimit != nil && event.Amount != nil && event.Amount.GreaterThan(*decision.ExpenseLimit) {
		return deny(domain.CheckExpenseLimitExceeded,
			fmt.Sprintf("amount %s exceeds expense limit %s of decision %s",
				event.Amount.String(), decision.ExpenseLimit.String(), decision.DecisionID))
	}
	if !decision.ActiveAt(event.OccurredAt) {
		return deny(domain.CheckOutsidePeriod,
			fmt.Sprintf("event date %s is outside the period of decision %s",
				event.OccurredAt.Format(time.DateOnly), decision.DecisionID))
	}

	check := domain.Allowed()
	check.RequiredDecision = dt
	check.DecisionID = decision.DecisionID
	return check
}

// CanUserApprove allows approval when the user's authority ranks at least as high
// as the authority of the decision governing the event. Events needing no decision
// may be approved by anyone with a known role.
func CanUserApprove(event *domain.Event, userRole domain.AuthorityLevel, decisions []domain.Decision, now time.Time) domain.Check {
	if !userRole.Valid() {
		return domain.Denied(domain.CheckUnknownRole, fmt.Sprintf("unknown role %q", userRole))
	}
	dt, required := RequiredDecisionType(event.EventType)
	if !required {
		return domain.Allowed()
	}
	decision := FindApplicableDecision(event, decisions, dt, now)
	if decision == nil {
		check := domain.Denied(domain.CheckDecisionMissing,
			fmt.Sprintf("approving %s requires an active %s decision", event.EventType, dt))
		check.RequiredDecision = dt
		check.BlockedBy = string(dt)
		return check
	}
	if userRole.Rank() < decision.AuthorityLevel.Rank() {
		check := domain.Denied(domain.CheckInsufficientRole,
			fmt.Sprintf("role %s cannot approve under %s authority", userRole, decision.AuthorityLevel))
		check.RequiredDecision = dt
		check.DecisionID = decision.DecisionID
		check.BlockedBy = decision.DecisionID
		return check
	}
	check := domain.Allowed()
	check.RequiredDecision = dt
	check.DecisionID = decision.DecisionID
	return check
}

func blockedMessage(event *domain.Event) string {
	if event.BlockedReason != nil && *event.BlockedReason != "" {
		return fmt.Sprintf("event is blocked by %s: %s", *event.BlockedBy, *event.BlockedReason)
	}
	return fmt.Sprintf("event is blocked by %s", *event.BlockedBy)
}

// KnownEventTypes lists the event types with an enforcement rule.
func KnownEventTypes() []domain.EventType {
	out := make([]domain.EventType, 0, len(decisionRequirements))
	for et := range decisionRequirements {
		out = append(out, et)
	}
	return out
}
