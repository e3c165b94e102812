package dto

import (
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDecisionRequest defines the data needed to register a decision.
type CreateDecisionRequest struct {
	BusinessProfileID string                `json:"businessProfileID" binding:"required"`
	DecisionType      domain.DecisionType   `json:"decisionType" binding:"required"`
	Title             string                `json:"title" binding:"required"`
	AuthorityLevel    domain.AuthorityLevel `json:"authorityLevel" binding:"required"`
	AllowsActions     []domain.EventType    `json:"allowsActions"`
	ExpenseLimit      *decimal.Decimal      `json:"expenseLimit"`
	PeriodStart       *time.Time            `json:"periodStart"`
	PeriodEnd         *time.Time            `json:"periodEnd"`
}

// ToDecision converts the request into a domain decision. An absent period
// means the decision has no time bound.
func (r CreateDecisionRequest) ToDecision() domain.Decision {
	d := domain.Decision{
		BusinessProfileID: r.BusinessProfileID,
		DecisionType:      r.DecisionType,
		Title:             r.Title,
		AuthorityLevel:    r.AuthorityLevel,
		AllowsActions:     r.AllowsActions,
		ExpenseLimit:      r.ExpenseLimit,
	}
	if r.PeriodStart != nil || r.PeriodEnd != nil {
		d.TimePeriod = &domain.TimePeriod{Start: r.PeriodStart, End: r.PeriodEnd}
	}
	return d
}

// ListDecisionsParams defines query parameters for listing decisions.
type ListDecisionsParams struct {
	BusinessProfileID string `form:"businessProfileID" binding:"required"`
	ActiveOnly        bool   `form:"activeOnly,default=false"`
}

// ListDecisionsResponse wraps a list of decisions.
type ListDecisionsResponse struct {
	Decisions []domain.Decision `json:"decisions"`
}
