package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DecisionType names the kind of authority a decision grants.
type DecisionType string

const (
	DecisionBudgetApproval    DecisionType = "budget_approval"
	DecisionContractAuthority DecisionType = "contract_authority"
	DecisionHiringAuthority   DecisionType = "hiring_authority"
	DecisionCapitalEvent      DecisionType = "capital_event"
)

// Valid reports whether t is a known decision type.
func (t DecisionType) Valid() bool {
	switch t {
	case DecisionBudgetApproval, DecisionContractAuthority, DecisionHiringAuthority, DecisionCapitalEvent:
		return true
	}
	return false
}

// AuthorityLevel is who issued a decision, and who may act under it.
type AuthorityLevel string

const (
	AuthorityShareholder AuthorityLevel = "shareholder"
	AuthorityBoard       AuthorityLevel = "board"
	AuthorityManager     AuthorityLevel = "manager"
	AuthorityEmployee    AuthorityLevel = "employee"
)

// Rank orders authority levels: shareholder=3 > board=2 > manager=1 > employee=0.
// Unknown levels rank -1.
func (a AuthorityLevel) Rank() int {
	switch a {
	case AuthorityShareholder:
		return 3
	case AuthorityBoard:
		return 2
	case AuthorityManager:
		return 1
	case AuthorityEmployee:
		return 0
	}
	return -1
}

// Valid reports whether a is a known authority level.
func (a AuthorityLevel) Valid() bool {
	return a.Rank() >= 0
}

// TimePeriod is an inclusive validity window. A nil bound is open.
type TimePeriod struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains reports whether t falls within the period, bounds inclusive.
func (p TimePeriod) Contains(t time.Time) bool {
	if p.Start != nil && t.Before(*p.Start) {
		return false
	}
	if p.End != nil && t.After(*p.End) {
		return false
	}
	return true
}

// Decision is an authority grant consulted before posting.
type Decision struct {
	DecisionID        string           `json:"decisionID"`
	BusinessProfileID string           `json:"businessProfileID"`
	DecisionType      DecisionType     `json:"decisionType"`
	Title             string           `json:"title"`
	AuthorityLevel    AuthorityLevel   `json:"authorityLevel"`
	AllowsActions     []EventType      `json:"allowsActions"`
	ExpenseLimit      *decimal.Decimal `json:"expenseLimit,omitempty"`
	TimePeriod        *TimePeriod      `json:"timePeriod,omitempty"`
	IsActive          bool             `json:"isActive"`
	AuditFields
}

// Allows reports whether the decision covers the event type.
func (d *Decision) Allows(t EventType) bool {
	for _, a := range d.AllowsActions {
		if a == t {
			return true
		}
	}
	return false
}

// ActiveAt reports whether the decision's window (if any) contains t.
func (d *Decision) ActiveAt(t time.Time) bool {
	if d.TimePeriod == nil {
		return true
	}
	return d.TimePeriod.Contains(t)
}
