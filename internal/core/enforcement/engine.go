package enforcement

import (
	"time"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

// Engine binds the pure checks to a clock so callers need not pass "now".
type Engine struct {
	now func() time.Time
}

// NewEngine creates an Engine. A nil clock uses time.Now in UTC.
func NewEngine(clock func() time.Time) *Engine {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Engine{now: clock}
}

// Now returns the engine's evaluation time.
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) CanProgressStatus(event *domain.Event, target domain.EventStatus) domain.Check {
	return CanProgressStatus(event, target)
}

func (e *Engine) CanPostEvent(event *domain.Event, decisions []domain.Decision) domain.Check {
	return CanPostEvent(event, decisions, e.now())
}

func (e *Engine) CanUserApprove(event *domain.Event, userRole domain.AuthorityLevel, decisions []domain.Decision) domain.Check {
	return CanUserApprove(event, userRole, decisions, e.now())
}

func (e *Engine) FindApplicableDecision(event *domain.Event, decisions []domain.Decision, dt domain.DecisionType) *domain.Decision {
	return FindApplicableDecision(event, decisions, dt, e.now())
}
