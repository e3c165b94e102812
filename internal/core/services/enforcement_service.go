package services

import (
	"context"
	"log/slog"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/enforcement"
	portsrepo "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/repositories"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
)

// enforcementService loads the inputs of the pure enforcement checks.
type enforcementService struct {
	BaseService
	eventRepo    portsrepo.EventReader
	decisionRepo portsrepo.DecisionReader
	engine       *enforcement.Engine
}

// NewEnforcementService creates a new enforcement service. A nil engine uses the wall clock.
func NewEnforcementService(eventRepo portsrepo.EventReader, decisionRepo portsrepo.DecisionReader, engine *enforcement.Engine) portssvc.EnforcementSvc {
	if engine == nil {
		engine = enforcement.NewEngine(nil)
	}
	return &enforcementService{
		eventRepo:    eventRepo,
		decisionRepo: decisionRepo,
		engine:       engine,
	}
}

var _ portssvc.EnforcementSvc = (*enforcementService)(nil)

func (s *enforcementService) CanPostEvent(ctx context.Context, eventID string) (*domain.Check, error) {
	event, decisions, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	check := s.engine.CanPostEvent(event, decisions)
	s.logCheck(ctx, "can_post_event", eventID, check)
	return &check, nil
}

func (s *enforcementService) CanProgressStatus(ctx context.Context, eventID string, target domain.EventStatus) (*domain.Check, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	check := s.engine.CanProgressStatus(event, target)
	s.logCheck(ctx, "can_progress_status", eventID, check)
	return &check, nil
}

func (s *enforcementService) CanUserApprove(ctx context.Context, eventID string, role domain.AuthorityLevel) (*domain.Check, error) {
	event, decisions, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	check := s.engine.CanUserApprove(event, role, decisions)
	s.logCheck(ctx, "can_user_approve", eventID, check)
	return &check, nil
}

func (s *enforcementService) load(ctx context.Context, eventID string) (*domain.Event, []domain.Decision, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	decisions, err := s.decisionRepo.ListDecisions(ctx, event.BusinessProfileID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load decisions", slog.String("business_profile_id", event.BusinessProfileID))
		return nil, nil, err
	}
	return event, decisions, nil
}

func (s *enforcementService) logCheck(ctx context.Context, check, eventID string, result domain.Check) {
	if result.IsAllowed {
		s.LogDebug(ctx, "Enforcement check passed", slog.String("check", check), slog.String("event_id", eventID))
		return
	}
	s.LogInfo(ctx, "Enforcement check blocked",
		slog.String("check", check),
		slog.String("event_id", eventID),
		slog.String("code", string(result.Code)),
		slog.String("blocked_by", result.BlockedBy))
}
