package repositories

import (
	"context"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// DecisionReader defines read operations for the decision registry
type DecisionReader interface {
	// FindDecisionByID retrieves a decision by its ID.
	FindDecisionByID(ctx context.Context, decisionID string) (*domain.Decision, error)

	// ListDecisions returns the decisions of a business profile in creation order.
	ListDecisions(ctx context.Context, businessProfileID string, activeOnly bool) ([]domain.Decision, error)
}

// DecisionWriter defines write operations for the decision registry
type DecisionWriter interface {
	// SaveDecision persists a new decision; an existing id is left untouched.
	SaveDecision(ctx context.Context, decision domain.Decision) error

	// DeactivateDecision marks a decision inactive.
	DeactivateDecision(ctx context.Context, decisionID string, userID string, now time.Time) error
}

// DecisionRepositoryFacade combines all decision-related repository interfaces
type DecisionRepositoryFacade interface {
	DecisionReader
	DecisionWriter
}
