package services

import (
	"context"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// EnforcementSvc loads an event and the decision registry and evaluates the pure checks.
type EnforcementSvc interface {
	// CanPostEvent evaluates whether the event may be posted now.
	CanPostEvent(ctx context.Context, eventID string) (*domain.Check, error)

	// CanProgressStatus evaluates whether the event may move to target.
	CanProgressStatus(ctx context.Context, eventID string, target domain.EventStatus) (*domain.Check, error)

	// CanUserApprove evaluates whether a user with the given role may approve the event.
	CanUserApprove(ctx context.Context, eventID string, role domain.AuthorityLevel) (*domain.Check, error)
}

// DecisionRegistrySvc manages authority grants.
type DecisionRegistrySvc interface {
	CreateDecision(ctx context.Context, decision domain.Decision, userID string) (*domain.Decision, error)
	DeactivateDecision(ctx context.Context, decisionID string, userID string) error
	GetDecision(ctx context.Context, decisionID string) (*domain.Decision, error)
	ListDecisions(ctx context.Context, businessProfileID string, activeOnly bool) ([]domain.Decision, error)
}
