package domain

// CheckCode classifies why an enforcement check failed.
type CheckCode string

const (
	CheckOK                   CheckCode = ""
	CheckNotSuccessor         CheckCode = "not_immediate_successor"
	CheckTerminalStatus       CheckCode = "terminal_status"
	CheckEventBlocked         CheckCode = "event_blocked"
	CheckDecisionMissing      CheckCode = "decision_missing"
	CheckActionNotAllowed     CheckCode = "action_not_allowed"
	CheckExpenseLimitExceeded CheckCode = "expense_limit_exceeded"
	CheckOutsidePeriod        CheckCode = "outside_decision_period"
	CheckInsufficientRole     CheckCode = "insufficient_authority"
	CheckUnknownRole          CheckCode = "unknown_role"
)

// Check is the data result of an enforcement evaluation. A false IsAllowed is a
// normal outcome, not an error.
type Check struct {
	IsAllowed        bool         `json:"isAllowed"`
	Code             CheckCode    `json:"code,omitempty"`
	ErrorMessage     string       `json:"errorMessage,omitempty"`
	BlockedBy        string       `json:"blockedBy,omitempty"`
	RequiredDecision DecisionType `json:"requiredDecision,omitempty"`
	// DecisionID is the decision that authorised (or was evaluated against) the action.
	DecisionID string `json:"decisionID,omitempty"`
}

// Allowed returns a passing check.
func Allowed() Check {
	return Check{IsAllowed: true}
}

// Denied returns a failing check with the given code and message.
func Denied(code CheckCode, msg string) Check {
	return Check{IsAllowed: false, Code: code, ErrorMessage: msg}
}

// TransitionResult is the outcome of an attempted status advance.
type TransitionResult struct {
	Event *Event `json:"event,omitempty"`
	Check Check  `json:"check"`
}
