package memory

import (
	"context"
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

type decisionRow struct {
	decision domain.Decision
}

func (s *Store) FindDecisionByID(ctx context.Context, decisionID string) (*domain.Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.decisions {
		if row.decision.DecisionID == decisionID {
			d := cloneDecision(row.decision)
			return &d, nil
		}
	}
	return nil, notFound("decision", decisionID)
}

func (s *Store) ListDecisions(ctx context.Context, businessProfileID string, activeOnly bool) ([]domain.Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpListDecisions, businessProfileID); err != nil {
		return nil, err
	}
	out := make([]domain.Decision, 0)
	for _, row := range s.decisions {
		if row.decision.BusinessProfileID != businessProfileID {
			continue
		}
		if activeOnly && !row.decision.IsActive {
			continue
		}
		out = append(out, cloneDecision(row.decision))
	}
	return out, nil
}

func (s *Store) SaveDecision(ctx context.Context, decision domain.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpSaveDecision, decision.DecisionID); err != nil {
		return err
	}
	for _, row := range s.decisions {
		if row.decision.DecisionID == decision.DecisionID {
			return nil
		}
	}
	s.decisions = append(s.decisions, &decisionRow{decision: cloneDecision(decision)})
	return nil
}

func (s *Store) DeactivateDecision(ctx context.Context, decisionID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFault(OpDeactivate, decisionID); err != nil {
		return err
	}
	for _, row := range s.decisions {
		if row.decision.DecisionID == decisionID {
			row.decision.IsActive = false
			row.decision.Touch(userID, now)
			return nil
		}
	}
	return notFound("decision", decisionID)
}

func cloneDecision(d domain.Decision) domain.Decision {
	out := d
	out.AllowsActions = append([]domain.EventType{}, d.AllowsActions...)
	if d.ExpenseLimit != nil {
		l := *d.ExpenseLimit
		out.ExpenseLimit = &l
	}
	if d.TimePeriod != nil {
		p := *d.TimePeriod
		out.TimePeriod = &p
	}
	return out
}
