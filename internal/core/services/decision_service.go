package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
)

// decisionService manages the decision registry.
type decisionService struct {
	BaseService
	decisionRepo portsrepo.DecisionRepositoryFacade
	engine       *enforcement.Engine
}

// NewDecisionService creates a new decision registry service.
func NewDecisionService(decisionRepo portsrepo.DecisionRepositoryFacade, engine *enforcement.Engine) portssvc.DecisionRegistrySvc {
	if engine == nil {
		engine = enforcement.NewEngine(nil)
	}
	return &decisionService{decisionRepo: decisionRepo, engine: engine}
}

var _ portssvc.DecisionRegistrySvc = (*decisionService)(nil)

func (s *decisionService) CreateDecision(ctx context.Context, decision domain.Decision, userID string) (*domain.Decision, error) {
	if err := validateDecision(decision); err != nil {
		return nil, err
	}

	now := s.engine.Now()
	if decision.DecisionID == "" {
		decision.DecisionID = uuid.NewString()
	}
	decision.IsActive = true
	decision.AuditFields = domain.NewAuditFields(userID, now)

	if err := s.decisionRepo.SaveDecision(ctx, decision); err != nil {
		s.LogError(ctx, err, "Failed to save decision", slog.String("decision_id", decision.DecisionID))
		return nil, err
	}
	s.LogInfo(ctx, "Decision created",
		slog.String("decision_id", decision.DecisionID),
		slog.String("decision_type", string(decision.DecisionType)),
		slog.String("authority_level", string(decision.AuthorityLevel)))
	return s.decisionRepo.FindDecisionByID(ctx, decision.DecisionID)
}

func validateDecision(d domain.Decision) error {
	var invalid []string
	if strings.TrimSpace(d.BusinessProfileID) == "" {
		invalid = append(invalid, "business_profile_id")
	}
	if !d.DecisionType.Valid() {
		invalid = append(invalid, "decision_type")
	}
	if strings.TrimSpace(d.Title) == "" {
		invalid = append(invalid, "title")
	}
	if !d.AuthorityLevel.Valid() {
		invalid = append(invalid, "authority_level")
	}
	if len(d.AllowsActions) == 0 {
		invalid = append(invalid, "allows_actions")
	}
	for _, a := range d.AllowsActions {
		if !a.Valid() {
			invalid = appendUnique(invalid, "allows_actions")
		}
	}
	if d.ExpenseLimit != nil && d.ExpenseLimit.IsNegative() {
		invalid = append(invalid, "expense_limit")
	}
	if p := d.TimePeriod; p != nil && p.Start != nil && p.End != nil && p.End.Before(*p.Start) {
		invalid = append(invalid, "time_period")
	}
	if len(invalid) > 0 {
		return apperrors.NewValidationError(invalid...)
	}
	return nil
}

func (s *decisionService) DeactivateDecision(ctx context.Context, decisionID string, userID string) error {
	if err := s.decisionRepo.DeactivateDecision(ctx, decisionID, userID, s.engine.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate decision", slog.String("decision_id", decisionID))
		return err
	}
	s.LogInfo(ctx, "Decision deactivated", slog.String("decision_id", decisionID), slog.String("user_id", userID))
	return nil
}

func (s *decisionService) GetDecision(ctx context.Context, decisionID string) (*domain.Decision, error) {
	return s.decisionRepo.FindDecisionByID(ctx, decisionID)
}

func (s *decisionService) ListDecisions(ctx context.Context, businessProfileID string, activeOnly bool) ([]domain.Decision, error) {
	if strings.TrimSpace(businessProfileID) == "" {
		return nil, apperrors.NewValidationError("business_profile_id")
	}
	return s.decisionRepo.ListDecisions(ctx, businessProfileID, activeOnly)
}
