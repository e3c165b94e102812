package mapping

import (
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/models"
)

// ToModelDecision converts a domain Decision to a model Decision, flattening
// the period into two nullable columns.
func ToModelDecision(d domain.Decision) models.Decision {
	actions := make([]string, len(d.AllowsActions))
	for i, a := range d.AllowsActions {
		actions[i] = string(a)
	}
	m := models.Decision{
		DecisionID:        d.DecisionID,
		BusinessProfileID: d.BusinessProfileID,
		DecisionType:      string(d.DecisionType),
		Title:             d.Title,
		AuthorityLevel:    string(d.AuthorityLevel),
		AllowsActions:     actions,
		ExpenseLimit:      d.ExpenseLimit,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.TimePeriod != nil {
		m.PeriodStart = d.TimePeriod.Start
		m.PeriodEnd = d.TimePeriod.End
	}
	return m
}

// ToDomainDecision converts a model Decision to a domain Decision
func ToDomainDecision(m models.Decision) domain.Decision {
	actions := make([]domain.EventType, len(m.AllowsActions))
	for i, a := range m.AllowsActions {
		actions[i] = domain.EventType(a)
	}
	d := domain.Decision{
		DecisionID:        m.DecisionID,
		BusinessProfileID: m.BusinessProfileID,
		DecisionType:      domain.DecisionType(m.DecisionType),
		Title:             m.Title,
		AuthorityLevel:    domain.AuthorityLevel(m.AuthorityLevel),
		AllowsActions:     actions,
		ExpenseLimit:      m.ExpenseLimit,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.PeriodStart != nil || m.PeriodEnd != nil {
		d.TimePeriod = &domain.TimePeriod{Start: m.PeriodStart, End: m.PeriodEnd}
	}
	return d
}
