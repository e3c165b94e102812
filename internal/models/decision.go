package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is one row of the decisions table. The validity window is flattened
// into two nullable columns.
type Decision struct {
	DecisionID        string           `db:"decision_id"`
	BusinessProfileID string           `db:"business_profile_id"`
	DecisionType      string           `db:"decision_type"`
	Title             string           `db:"title"`
	AuthorityLevel    string           `db:"authority_level"`
	AllowsActions     []string         `db:"allows_actions"`
	ExpenseLimit      *decimal.Decimal `db:"expense_limit"`
	PeriodStart       *time.Time       `db:"period_start"`
	PeriodEnd         *time.Time       `db:"period_end"`
	IsActive          bool             `db:"is_active"`
	AuditFields
}
